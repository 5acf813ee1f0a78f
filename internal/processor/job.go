package processor

import (
	"regexp"
	"strings"

	"github.com/bargavjillella/resume-analyzer/internal/logger"
	"github.com/bargavjillella/resume-analyzer/internal/nlp"
	"github.com/bargavjillella/resume-analyzer/internal/textproc"
)

// 技术技能匹配模式，按领域分组
var technicalSkillRegexps = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:python|java|javascript|react|angular|vue|node\.js|django|flask|spring|\.net)\b`),
	regexp.MustCompile(`\b(?:aws|azure|gcp|docker|kubernetes|git|sql|nosql|mongodb|postgresql)\b`),
	regexp.MustCompile(`\b(?:machine learning|deep learning|ai|ml|nlp|tensorflow|pytorch|scikit-learn)\b`),
	regexp.MustCompile(`\b(?:html|css|bootstrap|tailwind|scss|sass)\b`),
}

// 学历要求匹配模式
var educationReqRegexps = []*regexp.Regexp{
	regexp.MustCompile(`bachelor['s]?\s*degree`),
	regexp.MustCompile(`master['s]?\s*degree`),
	regexp.MustCompile(`phd|doctorate`),
	regexp.MustCompile(`computer science|engineering|mathematics|statistics`),
}

// 只保留组织、产品和地点类实体
var entityLabels = []string{"ORG", "PRODUCT", "GPE"}

// 岗位描述中提取的关键词数量上限
const maxJobKeywords = 20

// JobParser 从岗位描述文本中提取结构化要求
type JobParser struct {
	tagger *nlp.Tagger
}

// NewJobParser 创建岗位描述解析器
// 实体标注模型不可用时在这里直接失败，而不是留到每次解析时报错
func NewJobParser() (*JobParser, error) {
	tagger, err := nlp.GetTagger()
	if err != nil {
		return nil, err
	}
	return &JobParser{tagger: tagger}, nil
}

// ParseJobDescription 提取岗位要求
// 空文本不会报错，返回各字段为空的退化结果
func (p *JobParser) ParseJobDescription(jobDescription string) *JobRequirement {
	lower := strings.ToLower(jobDescription)

	return &JobRequirement{
		TechnicalSkills:       p.extractTechnicalSkills(lower),
		ExperienceYears:       textproc.MaxExperienceYears(jobDescription),
		EducationRequirements: p.extractEducationRequirements(lower),
		Entities:              p.extractEntities(jobDescription),
		Keywords:              textproc.TopKeywords(jobDescription, maxJobKeywords),
	}
}

// extractTechnicalSkills 应用各领域的技能模式，合并去重
// 结果保持首次命中的顺序
func (p *JobParser) extractTechnicalSkills(lower string) []string {
	seen := make(map[string]struct{})
	var skills []string
	for _, re := range technicalSkillRegexps {
		for _, match := range re.FindAllString(lower, -1) {
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			skills = append(skills, match)
		}
	}
	return skills
}

// extractEducationRequirements 匹配学历要求短语并去重
func (p *JobParser) extractEducationRequirements(lower string) []string {
	seen := make(map[string]struct{})
	var requirements []string
	for _, re := range educationReqRegexps {
		for _, match := range re.FindAllString(lower, -1) {
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			requirements = append(requirements, match)
		}
	}
	return requirements
}

// extractEntities 标注组织/产品/地点实体，按标注器输出顺序保留（含重复）
// 标注失败只影响这个诊断字段，不中断整体解析
func (p *JobParser) extractEntities(jobDescription string) []string {
	entities, err := p.tagger.Entities(jobDescription, entityLabels...)
	if err != nil {
		logger.Warn().Err(err).Msg("岗位描述实体标注失败")
		return nil
	}
	return entities
}
