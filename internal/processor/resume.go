package processor

import (
	"context"
	"regexp"
	"strings"

	"github.com/bargavjillella/resume-analyzer/internal/parser"
	"github.com/bargavjillella/resume-analyzer/internal/textproc"
)

var (
	emailRegexp = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	// 容忍可选国家码和 3-3-4 分组间的各种分隔符
	phoneRegexp = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	digitRegexp = regexp.MustCompile(`\d`)
)

// 学历关键词，命中任意一个的行被视为教育经历
var educationKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "mba", "b.s.", "m.s.",
	"b.a.", "m.a.", "b.tech", "m.tech", "diploma", "certificate",
}

type skillMatcher struct {
	canonical string
	re        *regexp.Regexp
}

// ResumeParser 从简历文档中提取结构化字段
type ResumeParser struct {
	extractor *parser.DocumentExtractor
	matchers  []skillMatcher
}

// NewResumeParser 创建简历解析器
// taxonomy为技能词表；为每个词表条目预编译整词匹配模式
func NewResumeParser(extractor *parser.DocumentExtractor, taxonomy []string) *ResumeParser {
	matchers := make([]skillMatcher, 0, len(taxonomy))
	for _, skill := range taxonomy {
		matchers = append(matchers, skillMatcher{
			canonical: skill,
			re:        regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(skill)) + `\b`),
		})
	}
	return &ResumeParser{
		extractor: extractor,
		matchers:  matchers,
	}
}

// ParseResume 提取文档文本并派生所有结构化字段
// 纯文本输入的RawText与输入逐字节一致
func (p *ResumeParser) ParseResume(ctx context.Context, content []byte, format string) (*ResumeRecord, error) {
	text, err := p.extractor.Extract(ctx, content, format)
	if err != nil {
		return nil, err
	}

	return &ResumeRecord{
		RawText:         text,
		ContactInfo:     p.extractContactInfo(text),
		Skills:          p.ExtractSkills(text),
		ExperienceYears: textproc.MaxExperienceYears(text),
		Education:       p.extractEducation(text),
		WordCount:       len(strings.Fields(text)),
	}, nil
}

// extractContactInfo 提取邮箱、电话和姓名，均取第一个命中
func (p *ResumeParser) extractContactInfo(text string) ContactInfo {
	var info ContactInfo

	if email := emailRegexp.FindString(text); email != "" {
		info.Email = &email
	}
	if phone := phoneRegexp.FindString(text); phone != "" {
		info.Phone = &phone
	}

	// 姓名启发式：文档开头的短行通常是姓名
	seen := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > 5 {
			break
		}
		if len(strings.Fields(line)) <= 4 && len(line) > 3 &&
			!digitRegexp.MatchString(line) &&
			!strings.Contains(line, "@") &&
			!strings.Contains(line, ".com") {
			info.Name = &line
			break
		}
	}

	return info
}

// ExtractSkills 对词表逐条做整词匹配，返回命中条目的规范写法
// 多次出现只记一次，结果顺序与词表一致
func (p *ResumeParser) ExtractSkills(text string) []string {
	textLower := strings.ToLower(text)

	var skills []string
	for _, m := range p.matchers {
		if m.re.MatchString(textLower) {
			skills = append(skills, m.canonical)
		}
	}
	return skills
}

// extractEducation 按文档顺序收集包含学历关键词的行，保留重复
func (p *ResumeParser) extractEducation(text string) []string {
	var education []string
	for _, line := range strings.Split(text, "\n") {
		lineLower := strings.ToLower(line)
		for _, keyword := range educationKeywords {
			if strings.Contains(lineLower, keyword) {
				education = append(education, strings.TrimSpace(line))
				break
			}
		}
	}
	return education
}
