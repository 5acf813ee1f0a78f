package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bargavjillella/resume-analyzer/internal/api/handler"
	"github.com/bargavjillella/resume-analyzer/internal/api/router"
	"github.com/bargavjillella/resume-analyzer/internal/config"
)

func newTestServer(t *testing.T, apiKey string) *server.Hertz {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Recommend.SampleSeed = 42 // 固定种子，响应可复现

	analyzeHandler, err := handler.NewAnalyzeHandler(context.Background(), cfg)
	require.NoError(t, err, "初始化分析管线失败")

	h := server.Default()
	router.RegisterRoutes(h, analyzeHandler, apiKey)
	return h
}

// createAnalyzeForm 构造带简历文件和岗位描述的multipart表单
func createAnalyzeForm(t *testing.T, filename, resumeText, jobDescription string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(resumeText))
	require.NoError(t, err)

	require.NoError(t, writer.WriteField("job_description", jobDescription))
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

// TestHealthEndpoint 健康检查
func TestHealthEndpoint(t *testing.T) {
	h := newTestServer(t, "")

	resp := ut.PerformRequest(h.Engine, "GET", "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok"}`, resp.Body.String())
}

// TestAnalyzeEndpoint 纯文本简历的完整分析流程
func TestAnalyzeEndpoint(t *testing.T) {
	h := newTestServer(t, "")

	resumeText := "Jane Smith\njane@example.com\nPython and React developer with 4 years of experience using Docker."
	jobDescription := "Backend engineer. 3+ years experience. Must know Python, React, AWS."
	body, contentType := createAnalyzeForm(t, "resume.txt", resumeText, jobDescription)

	resp := ut.PerformRequest(h.Engine, "POST", "/api/v1/analyze",
		&ut.Body{Body: body, Len: body.Len()},
		ut.Header{Key: "Content-Type", Value: contentType},
	)
	require.Equal(t, http.StatusOK, resp.Code, "响应体: %s", resp.Body.String())

	var analyzeResp handler.AnalyzeResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &analyzeResp))

	assert.NotEmpty(t, analyzeResp.AnalysisID)
	require.NotNil(t, analyzeResp.Resume)
	assert.Equal(t, resumeText, analyzeResp.Resume.RawText, "纯文本简历原样保留")
	assert.Equal(t, 4, analyzeResp.Resume.ExperienceYears)

	require.NotNil(t, analyzeResp.JobRequirements)
	assert.Equal(t, 3, analyzeResp.JobRequirements.ExperienceYears)
	assert.Contains(t, analyzeResp.JobRequirements.TechnicalSkills, "aws")

	require.NotNil(t, analyzeResp.SkillAnalysis)
	assert.Contains(t, analyzeResp.SkillAnalysis.Matched, "Python")

	require.NotNil(t, analyzeResp.ScoreBreakdown)
	assert.GreaterOrEqual(t, analyzeResp.ScoreBreakdown.OverallScore, 0)
	assert.LessOrEqual(t, analyzeResp.ScoreBreakdown.OverallScore, 100)
	assert.Equal(t, "Meets requirement (4 years)", analyzeResp.ScoreBreakdown.ExperienceMatch)

	require.NotNil(t, analyzeResp.Recommendations)
	assert.Len(t, analyzeResp.Recommendations.ATSOptimization, 4)
}

// TestAnalyzeEndpointMissingJobDescription 缺少岗位描述返回400
func TestAnalyzeEndpointMissingJobDescription(t *testing.T) {
	h := newTestServer(t, "")

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("resume", "resume.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("some resume"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	resp := ut.PerformRequest(h.Engine, "POST", "/api/v1/analyze",
		&ut.Body{Body: body, Len: body.Len()},
		ut.Header{Key: "Content-Type", Value: writer.FormDataContentType()},
	)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

// TestAnalyzeEndpointUnsupportedFormat 未知文件格式返回400
func TestAnalyzeEndpointUnsupportedFormat(t *testing.T) {
	h := newTestServer(t, "")

	body, contentType := createAnalyzeForm(t, "resume.xlsx", "data", "some job")
	resp := ut.PerformRequest(h.Engine, "POST", "/api/v1/analyze",
		&ut.Body{Body: body, Len: body.Len()},
		ut.Header{Key: "Content-Type", Value: contentType},
	)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

// TestAPIKeyAuth 配置API Key后未授权的请求被拒绝
func TestAPIKeyAuth(t *testing.T) {
	h := newTestServer(t, "test-key")

	// 缺少请求头
	resp := ut.PerformRequest(h.Engine, "GET", "/api/v1/health", nil)
	assert.NotEqual(t, http.StatusOK, resp.Code)

	// 错误的Key
	resp = ut.PerformRequest(h.Engine, "GET", "/api/v1/health", nil,
		ut.Header{Key: "X-API-Key", Value: "wrong-key"},
	)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	// 正确的Key
	resp = ut.PerformRequest(h.Engine, "GET", "/api/v1/health", nil,
		ut.Header{Key: "X-API-Key", Value: "test-key"},
	)
	assert.Equal(t, http.StatusOK, resp.Code)
}
