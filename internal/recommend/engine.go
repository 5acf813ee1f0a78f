// Package recommend 基于分析结果生成分类的改进建议。
// 除两处建议池抽样外所有规则都是确定性的；抽样使用可注入的随机源，
// 测试中固定种子即可获得可复现输出。
package recommend

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/bargavjillella/resume-analyzer/internal/processor"
)

// 各类建议的数量上限
const (
	maxMissingSkillItems  = 5
	maxKeywordItems       = 10
	formattingSampleCount = 3
	atsSampleCount        = 4
	maxActionItems        = 6
)

// 得分档位分界
const (
	lowScoreCutoff  = 60
	highScoreCutoff = 80
)

// Recommendations 六类建议列表
type Recommendations struct {
	Skills              []string `json:"skill_recommendations"`
	Experience          []string `json:"experience_recommendations"`
	KeywordOptimization []string `json:"keyword_optimization"`
	FormattingTips      []string `json:"formatting_tips"`
	ContentImprovements []string `json:"content_improvements"`
	ATSOptimization     []string `json:"ats_optimization"`
}

// ActionItem 行动计划中的一项
type ActionItem struct {
	Priority string `json:"priority"`
	Action   string `json:"action"`
	Category string `json:"category"`
}

// Engine 建议生成引擎
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// Option 引擎的配置选项
type Option func(*Engine)

// WithSeed 固定随机种子，建议抽样可复现（主要用于测试）
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRandSource 注入自定义随机源
func WithRandSource(src rand.Source) Option {
	return func(e *Engine) {
		e.rng = rand.New(src)
	}
}

// NewEngine 创建建议引擎，默认使用时间种子的随机源
func NewEngine(options ...Option) *Engine {
	e := &Engine{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// sample 从池中无放回抽取n项
func (e *Engine) sample(pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}

	e.mu.Lock()
	perm := e.rng.Perm(len(pool))
	e.mu.Unlock()

	picked := make([]string, 0, n)
	for _, idx := range perm[:n] {
		picked = append(picked, pool[idx])
	}
	return picked
}

// Generate 生成全部六类建议
func (e *Engine) Generate(resume *processor.ResumeRecord, job *processor.JobRequirement,
	skills *processor.SkillAnalysis, breakdown *processor.ScoreBreakdown) *Recommendations {
	return &Recommendations{
		Skills:              e.SkillRecommendations(skills, job),
		Experience:          e.ExperienceRecommendations(resume, job),
		KeywordOptimization: e.KeywordOptimizationTips(skills),
		FormattingTips:      e.FormattingRecommendations(resume),
		ContentImprovements: e.ContentImprovements(breakdown.OverallScore),
		ATSOptimization:     e.sample(atsTips, atsSampleCount),
	}
}

// SkillRecommendations 针对缺失技能的建议
// 每个缺失技能一条，最多取前5个；匹配率低于70%时追加两条通用提升建议
func (e *Engine) SkillRecommendations(skills *processor.SkillAnalysis, job *processor.JobRequirement) []string {
	var recommendations []string

	missing := skills.Missing
	if len(missing) > maxMissingSkillItems {
		missing = missing[:maxMissingSkillItems]
	}
	for _, skill := range missing {
		recommendations = append(recommendations,
			fmt.Sprintf("Add '%s' to your skills section and experience descriptions", skill))
	}

	if float64(len(skills.Matched)) < float64(len(job.TechnicalSkills))*0.7 {
		recommendations = append(recommendations,
			"Consider taking online courses to acquire missing technical skills",
			"Highlight transferable skills that relate to the missing requirements")
	}

	return recommendations
}

// ExperienceRecommendations 经验差距与内容量相关的建议
func (e *Engine) ExperienceRecommendations(resume *processor.ResumeRecord, job *processor.JobRequirement) []string {
	var recommendations []string

	if job.ExperienceYears > resume.ExperienceYears {
		gap := job.ExperienceYears - resume.ExperienceYears
		recommendations = append(recommendations,
			fmt.Sprintf("Consider highlighting %d years of relevant project or internship experience", gap),
			"Emphasize freelance work, volunteer projects, or personal projects",
			"Include relevant coursework or academic projects that demonstrate skills",
			"Consider pursuing additional certifications to strengthen your profile")
	}

	if resume.WordCount < 300 {
		recommendations = append(recommendations,
			"Expand your work experience descriptions with specific achievements",
			"Add quantified results and metrics to your accomplishments")
	}

	return recommendations
}

// KeywordOptimizationTips 关键词优化建议
// 最多取前10个缺失技能；缺失超过5个时追加三条通用建议
func (e *Engine) KeywordOptimizationTips(skills *processor.SkillAnalysis) []string {
	var tips []string

	missing := skills.Missing
	if len(missing) > maxKeywordItems {
		missing = missing[:maxKeywordItems]
	}
	for _, keyword := range missing {
		tips = append(tips,
			fmt.Sprintf("Include '%s' naturally in your experience or skills section", keyword))
	}

	if len(missing) > 5 {
		tips = append(tips,
			"Review the job description and identify industry-specific terms to include",
			"Use variations of important keywords throughout your resume",
			"Include acronyms and full forms of technical terms (e.g., 'AI' and 'Artificial Intelligence')")
	}

	return tips
}

// FormattingRecommendations 格式建议：3条抽样建议加上按内容触发的补充建议
func (e *Engine) FormattingRecommendations(resume *processor.ResumeRecord) []string {
	recommendations := e.sample(atsTips, formattingSampleCount)

	if resume.WordCount < 200 {
		recommendations = append(recommendations,
			"Consider adding more detailed descriptions of your experience")
	} else if resume.WordCount > 800 {
		recommendations = append(recommendations,
			"Consider condensing your resume content for better readability")
	}

	if resume.ContactInfo.Email == nil {
		recommendations = append(recommendations,
			"Ensure your email address is clearly visible at the top")
	}
	if resume.ContactInfo.Phone == nil {
		recommendations = append(recommendations,
			"Include your phone number in the contact section")
	}

	return recommendations
}

// ContentImprovements 按得分档位返回对应的内容改进建议列表
func (e *Engine) ContentImprovements(overallScore int) []string {
	switch {
	case overallScore >= highScoreCutoff:
		return highScoreImprovements
	case overallScore >= lowScoreCutoff:
		return mediumScoreImprovements
	default:
		return lowScoreImprovements
	}
}

// ActionPlan 从建议中提炼优先级行动计划，最多6项
// 低分时技能和经验建议列为高优先级；关键词建议为中优先级；格式建议为低优先级
func (e *Engine) ActionPlan(recommendations *Recommendations, breakdown *processor.ScoreBreakdown) []ActionItem {
	var items []ActionItem

	if breakdown.OverallScore < lowScoreCutoff {
		skillAction := "Add relevant technical skills"
		if len(recommendations.Skills) > 0 {
			skillAction = recommendations.Skills[0]
		}
		experienceAction := "Expand work experience descriptions"
		if len(recommendations.Experience) > 0 {
			experienceAction = recommendations.Experience[0]
		}
		items = append(items,
			ActionItem{Priority: "High", Action: skillAction, Category: "Skills"},
			ActionItem{Priority: "High", Action: experienceAction, Category: "Experience"})
	}

	if len(recommendations.KeywordOptimization) > 0 {
		items = append(items, ActionItem{
			Priority: "Medium",
			Action:   recommendations.KeywordOptimization[0],
			Category: "Keywords",
		})
	}

	if len(recommendations.FormattingTips) > 0 {
		items = append(items, ActionItem{
			Priority: "Low",
			Action:   recommendations.FormattingTips[0],
			Category: "Formatting",
		})
	}

	if len(items) > maxActionItems {
		items = items[:maxActionItems]
	}
	return items
}
