// Package textproc 提供分析管线共用的文本处理能力：
// 文本归一化、分词、经验年限匹配，以及TF-IDF向量化与余弦相似度。
package textproc

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	whitespaceRegexp = regexp.MustCompile(`\s+`)
	// 清除特殊字符，但保留技术词汇中常见的 + # - .（如 c++, c#, node.js）
	specialCharRegexp = regexp.MustCompile(`[^\w\s\+\#\-\.]`)
	// 分词：连续两个以上的单词字符
	tokenRegexp = regexp.MustCompile(`\b\w\w+\b`)
)

// 简历和岗位描述共用同一组经验年限表达模式，避免两侧各自维护导致漂移
var experienceYearRegexps = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`experience\s*[:\-]?\s*(\d+)\+?\s*years?`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*in`),
}

// Normalize 清洗文本：折叠空白、去除特殊字符、转为小写
func Normalize(text string) string {
	text = whitespaceRegexp.ReplaceAllString(strings.TrimSpace(text), " ")
	text = specialCharRegexp.ReplaceAllString(text, " ")
	return strings.ToLower(text)
}

// Tokenize 对已归一化的文本分词
func Tokenize(text string) []string {
	return tokenRegexp.FindAllString(text, -1)
}

// MaxExperienceYears 在全文范围内匹配所有经验年限表达，返回其中的最大值
// 没有任何匹配时返回0
func MaxExperienceYears(text string) int {
	lower := strings.ToLower(text)

	maxYears := 0
	for _, re := range experienceYearRegexps {
		for _, match := range re.FindAllStringSubmatch(lower, -1) {
			years, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			if years > maxYears {
				maxYears = years
			}
		}
	}
	return maxYears
}
