package processor

import (
	"fmt"
	"math"
	"strings"

	"github.com/bargavjillella/resume-analyzer/internal/textproc"
)

// 综合得分的固定权重
const (
	similarityWeight = 40.0
	skillWeight      = 35.0
	experienceWeight = 15.0
	educationWeight  = 10.0 // 学历维度暂按满分计，见ScoreBreakdown.EducationMatch
)

// AnalysisResult 一次完整分析的全部输出
type AnalysisResult struct {
	JobRequirement  *JobRequirement `json:"job_requirements"`
	SkillAnalysis   *SkillAnalysis  `json:"skill_analysis"`
	ScoreBreakdown  *ScoreBreakdown `json:"score_breakdown"`
	SimilarityScore float64         `json:"similarity_score"` // 原始[0,1]相似度
}

// Analyzer 汇总各信号源，产出完整的匹配分析
type Analyzer struct {
	jobs *JobParser
}

// NewAnalyzer 创建分析器
func NewAnalyzer() (*Analyzer, error) {
	jobs, err := NewJobParser()
	if err != nil {
		return nil, err
	}
	return &Analyzer{jobs: jobs}, nil
}

// Analyze 执行完整分析：提取岗位要求、计算相似度、对比技能并汇总得分
func (a *Analyzer) Analyze(resume *ResumeRecord, jobDescription string) *AnalysisResult {
	job := a.jobs.ParseJobDescription(jobDescription)
	similarity := textproc.Similarity(resume.RawText, jobDescription)
	skills := AnalyzeSkillMatch(resume.Skills, job)

	return &AnalysisResult{
		JobRequirement:  job,
		SkillAnalysis:   skills,
		ScoreBreakdown:  GenerateScoreBreakdown(resume, job, skills, similarity),
		SimilarityScore: similarity,
	}
}

// AnalyzeSkillMatch 对比简历技能与岗位要求
// 要求集合 = 技术技能 ∪ 关键词，忽略大小写去重；
// Matched/Missing/Additional 按来源顺序排列
func AnalyzeSkillMatch(resumeSkills []string, job *JobRequirement) *SkillAnalysis {
	requiredSet := make(map[string]struct{})
	var required []string
	for _, skill := range append(append([]string{}, job.TechnicalSkills...), job.Keywords...) {
		lower := strings.ToLower(skill)
		if _, ok := requiredSet[lower]; ok {
			continue
		}
		requiredSet[lower] = struct{}{}
		required = append(required, skill)
	}

	resumeSet := make(map[string]struct{}, len(resumeSkills))
	for _, skill := range resumeSkills {
		resumeSet[strings.ToLower(skill)] = struct{}{}
	}

	analysis := &SkillAnalysis{}
	seenMatched := make(map[string]struct{})
	seenAdditional := make(map[string]struct{})
	for _, skill := range resumeSkills {
		lower := strings.ToLower(skill)
		if _, ok := requiredSet[lower]; ok {
			if _, dup := seenMatched[lower]; !dup {
				seenMatched[lower] = struct{}{}
				analysis.Matched = append(analysis.Matched, skill)
			}
		} else {
			if _, dup := seenAdditional[lower]; !dup {
				seenAdditional[lower] = struct{}{}
				analysis.Additional = append(analysis.Additional, skill)
			}
		}
	}

	for _, skill := range required {
		if _, ok := resumeSet[strings.ToLower(skill)]; !ok {
			analysis.Missing = append(analysis.Missing, skill)
		}
	}

	return analysis
}

// CalculateOverallScore 计算0-100的综合匹配得分
// 各分项独立计算后求和：相似度40分、技能35分、经验15分、学历10分；
// 岗位未给出技能或经验要求时对应分项按满分计
func CalculateOverallScore(resume *ResumeRecord, job *JobRequirement, skills *SkillAnalysis, similarity float64) int {
	score := similarity * similarityWeight

	if total := len(job.TechnicalSkills); total > 0 {
		score += float64(len(skills.Matched)) / float64(total) * skillWeight
	} else {
		score += skillWeight
	}

	if job.ExperienceYears > 0 {
		ratio := math.Min(float64(resume.ExperienceYears)/float64(job.ExperienceYears), 1.0)
		score += ratio * experienceWeight
	} else {
		score += experienceWeight
	}

	score += educationWeight

	final := int(math.Floor(score))
	if final > 100 {
		final = 100
	}
	if final < 0 {
		final = 0
	}
	return final
}

// GenerateScoreBreakdown 生成综合得分及各维度明细
func GenerateScoreBreakdown(resume *ResumeRecord, job *JobRequirement, skills *SkillAnalysis, similarity float64) *ScoreBreakdown {
	breakdown := &ScoreBreakdown{
		OverallScore:    CalculateOverallScore(resume, job, skills, similarity),
		SimilarityScore: round1(similarity * 100),
		ExperienceMatch: "Unknown",
		EducationMatch:  "Not evaluated",
	}

	if total := len(job.TechnicalSkills); total > 0 {
		breakdown.SkillMatchPercentage = round1(float64(len(skills.Matched)) / float64(total) * 100)
	}

	if job.ExperienceYears > 0 {
		if resume.ExperienceYears >= job.ExperienceYears {
			breakdown.ExperienceMatch = fmt.Sprintf("Meets requirement (%d years)", resume.ExperienceYears)
		} else {
			breakdown.ExperienceMatch = fmt.Sprintf("Short by %d years", job.ExperienceYears-resume.ExperienceYears)
		}
	}

	return breakdown
}

// round1 保留1位小数
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
