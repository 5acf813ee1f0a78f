package router

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/keyauth"

	"github.com/bargavjillella/resume-analyzer/internal/api/handler"
	"github.com/bargavjillella/resume-analyzer/internal/parser"
)

// RegisterRoutes 注册 API 路由
// apiKey非空时对 /api/v1 下的接口启用 X-API-Key 鉴权
func RegisterRoutes(h *server.Hertz, analyzeHandler *handler.AnalyzeHandler, apiKey string) {
	api := h.Group("/api/v1")

	if apiKey != "" {
		api.Use(keyauth.New(
			keyauth.WithKeyLookUp("header:X-API-Key", ""),
			keyauth.WithValidator(func(ctx context.Context, c *app.RequestContext, key string) (bool, error) {
				return key == apiKey, nil
			}),
		))
	}

	api.POST("/analyze", func(c context.Context, ctx *app.RequestContext) {
		// 获取上传的简历文件
		fileHeader, err := ctx.FormFile("resume")
		if err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "简历文件未找到"})
			return
		}

		// 岗位描述文本
		jobDescription := ctx.PostForm("job_description")
		if jobDescription == "" {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "缺少岗位描述"})
			return
		}

		// 格式标签默认按文件扩展名推断，可用 format 字段覆盖
		format := ctx.PostForm("format")
		if format == "" {
			format = strings.TrimPrefix(strings.ToLower(filepath.Ext(fileHeader.Filename)), ".")
		}

		file, err := fileHeader.Open()
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "打开文件失败"})
			return
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "读取文件失败"})
			return
		}

		resp, err := analyzeHandler.HandleAnalyze(c, content, format, jobDescription)
		if err != nil {
			status := consts.StatusInternalServerError
			if errors.Is(err, parser.ErrUnsupportedFormat) {
				status = consts.StatusBadRequest
			}
			ctx.JSON(status, utils.H{"error": err.Error()})
			return
		}

		ctx.JSON(consts.StatusOK, resp)
	})

	// 健康检查
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}
