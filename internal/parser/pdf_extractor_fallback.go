package parser

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/bargavjillella/resume-analyzer/internal/logger"
)

// LedongthucPDFEngine 基于 ledongthuc/pdf 的备用提取引擎
// 实现简单，逐页拼接纯文本，在首选引擎失败时兜底
type LedongthucPDFEngine struct{}

// NewLedongthucPDFEngine 创建备用PDF提取引擎
func NewLedongthucPDFEngine() *LedongthucPDFEngine {
	return &LedongthucPDFEngine{}
}

// ExtractFromBytes 从PDF字节内容中逐页提取纯文本
func (e *LedongthucPDFEngine) ExtractFromBytes(_ context.Context, data []byte) (string, error) {
	pdfReader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("读取PDF失败: %w", err)
	}

	var builder strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// 单页失败不中断整体提取
			logger.Warn().Err(err).Int("page", i).Msg("提取PDF页面文本失败，跳过该页")
			continue
		}
		builder.WriteString(pageText)
		builder.WriteString("\n")
	}

	text := builder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("PDF中没有可提取的文本 (共%d页)", numPages)
	}
	return text, nil
}
