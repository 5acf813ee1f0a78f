// Package handler 把分析管线包装成HTTP可调用的处理器。
package handler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bargavjillella/resume-analyzer/internal/config"
	"github.com/bargavjillella/resume-analyzer/internal/logger"
	"github.com/bargavjillella/resume-analyzer/internal/parser"
	"github.com/bargavjillella/resume-analyzer/internal/processor"
	"github.com/bargavjillella/resume-analyzer/internal/recommend"
	"github.com/bargavjillella/resume-analyzer/internal/taxonomy"
)

// AnalyzeResponse 一次分析请求的完整响应
// 分析结果不做任何持久化，响应即全部输出
type AnalyzeResponse struct {
	AnalysisID      string                     `json:"analysis_id"`
	Resume          *processor.ResumeRecord    `json:"resume"`
	JobRequirements *processor.JobRequirement  `json:"job_requirements"`
	SkillAnalysis   *processor.SkillAnalysis   `json:"skill_analysis"`
	ScoreBreakdown  *processor.ScoreBreakdown  `json:"score_breakdown"`
	Recommendations *recommend.Recommendations `json:"recommendations"`
	ActionPlan      []recommend.ActionItem     `json:"action_plan"`
}

// AnalyzeHandler 分析请求处理器，持有整条管线的各组件
type AnalyzeHandler struct {
	resumes     *processor.ResumeParser
	analyzer    *processor.Analyzer
	recommender *recommend.Engine
}

// NewAnalyzeHandler 组装分析管线
// 实体标注模型或PDF解析器初始化失败时直接报错，不允许带病启动
func NewAnalyzeHandler(ctx context.Context, cfg *config.Config) (*AnalyzeHandler, error) {
	extractor, err := parser.NewDocumentExtractor(ctx,
		parser.WithPDFTimeout(time.Duration(cfg.PDF.TimeoutSeconds)*time.Second),
	)
	if err != nil {
		return nil, err
	}

	analyzer, err := processor.NewAnalyzer()
	if err != nil {
		return nil, err
	}

	var engineOptions []recommend.Option
	if cfg.Recommend.SampleSeed != 0 {
		engineOptions = append(engineOptions, recommend.WithSeed(cfg.Recommend.SampleSeed))
	}

	return &AnalyzeHandler{
		resumes:     processor.NewResumeParser(extractor, taxonomy.All()),
		analyzer:    analyzer,
		recommender: recommend.NewEngine(engineOptions...),
	}, nil
}

// HandleAnalyze 执行单次分析：解析简历、对照岗位描述打分、生成建议
func (h *AnalyzeHandler) HandleAnalyze(ctx context.Context, content []byte, format string, jobDescription string) (*AnalyzeResponse, error) {
	analysisID := uuid.New().String()
	startTime := time.Now()

	resume, err := h.resumes.ParseResume(ctx, content, format)
	if err != nil {
		logger.Error().Err(err).Str("analysis_id", analysisID).Str("format", format).Msg("解析简历失败")
		return nil, err
	}

	result := h.analyzer.Analyze(resume, jobDescription)
	recommendations := h.recommender.Generate(resume, result.JobRequirement, result.SkillAnalysis, result.ScoreBreakdown)
	actionPlan := h.recommender.ActionPlan(recommendations, result.ScoreBreakdown)

	logger.Info().
		Str("analysis_id", analysisID).
		Int("overall_score", result.ScoreBreakdown.OverallScore).
		Int("word_count", resume.WordCount).
		Dur("duration", time.Since(startTime)).
		Msg("分析完成")

	return &AnalyzeResponse{
		AnalysisID:      analysisID,
		Resume:          resume,
		JobRequirements: result.JobRequirement,
		SkillAnalysis:   result.SkillAnalysis,
		ScoreBreakdown:  result.ScoreBreakdown,
		Recommendations: recommendations,
		ActionPlan:      actionPlan,
	}, nil
}
