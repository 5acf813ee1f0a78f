package parser

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoParser "github.com/cloudwego/eino/components/document/parser"

	"github.com/bargavjillella/resume-analyzer/internal/logger"
)

// EinoPDFEngine 使用 Eino PDF Parser 提取文本，作为首选引擎
// 相比备用引擎能更好地还原版面中的文本顺序
type EinoPDFEngine struct {
	parser  *pdf.PDFParser
	timeout time.Duration
}

// NewEinoPDFEngine 初始化 Eino PDF 文本提取引擎
// 配置为不按页面分割，直接获取整个文档的连续文本
func NewEinoPDFEngine(ctx context.Context, timeout time.Duration) (*EinoPDFEngine, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{
		ToPages: false, // 整个PDF的文本作为单个字符串返回
	})
	if err != nil {
		return nil, fmt.Errorf("创建 Eino PDF 解析器失败: %w", err)
	}

	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &EinoPDFEngine{parser: p, timeout: timeout}, nil
}

// ExtractFromBytes 从PDF字节内容中提取纯文本
// 解析出错或没有提取到任何文本时返回错误，由上层决定是否降级到备用引擎
func (e *EinoPDFEngine) ExtractFromBytes(ctx context.Context, data []byte) (string, error) {
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	docs, err := e.parser.Parse(ctx, bytes.NewReader(data),
		einoParser.WithURI("resume.pdf"),
	)
	if err != nil {
		return "", fmt.Errorf("eino PDF 解析失败: %w", err)
	}
	if len(docs) == 0 {
		return "", fmt.Errorf("eino PDF 解析无结果")
	}

	// 合并所有文档的内容（以防万一返回了多个）
	var builder strings.Builder
	for i, doc := range docs {
		builder.WriteString(doc.Content)
		if i < len(docs)-1 {
			builder.WriteString("\n")
		}
	}

	text := builder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("eino PDF 解析结果为空文本")
	}

	logger.Debug().
		Int("text_length", len(text)).
		Dur("duration", time.Since(startTime)).
		Msg("eino PDF 提取完成")
	return text, nil
}
