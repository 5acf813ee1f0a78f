// Package processor 实现简历与岗位描述的结构化提取、匹配打分与汇总。
package processor

// ContactInfo 联系方式，未识别出的字段为nil
type ContactInfo struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// ResumeRecord 一次解析得到的简历结构化数据
// 每次解析调用产生一个新实例，创建后不再修改
type ResumeRecord struct {
	RawText         string      `json:"raw_text"`
	ContactInfo     ContactInfo `json:"contact_info"`
	Skills          []string    `json:"skills"`           // 词表规范写法，已去重
	ExperienceYears int         `json:"experience_years"` // 所有匹配模式中的最大值
	Education       []string    `json:"education"`        // 原始行，按文档顺序，保留重复
	WordCount       int         `json:"word_count"`
}

// JobRequirement 从岗位描述中提取的要求
type JobRequirement struct {
	TechnicalSkills       []string `json:"technical_skills"` // 小写匹配结果，已去重
	ExperienceYears       int      `json:"experience_years"`
	EducationRequirements []string `json:"education_requirements"`
	Entities              []string `json:"entities"` // 诊断字段，不参与打分
	Keywords              []string `json:"keywords"` // 按相关性排序，最多20个
}

// SkillAnalysis 简历技能与岗位要求的对比结果
// Matched∪Missing 等于岗位要求的完整技能集合（忽略大小写去重）；
// Additional 是简历中不在要求集合内的技能
type SkillAnalysis struct {
	Matched    []string `json:"matched_skills"`
	Missing    []string `json:"missing_skills"`
	Additional []string `json:"additional_skills"`
}

// ScoreBreakdown 综合得分与各维度明细
type ScoreBreakdown struct {
	OverallScore         int     `json:"overall_score"`          // 0-100
	SimilarityScore      float64 `json:"similarity_score"`       // 百分比，1位小数
	SkillMatchPercentage float64 `json:"skill_match_percentage"` // 百分比，1位小数
	ExperienceMatch      string  `json:"experience_match"`
	EducationMatch       string  `json:"education_match"` // 本设计中未实际评估
}
