// Package parser 将PDF/DOCX/纯文本文档转换为归一的纯文本。
package parser

import (
	"context"
	"time"

	"github.com/bargavjillella/resume-analyzer/internal/logger"
)

// 支持的文档格式标签
const (
	FormatPDF  = "pdf"
	FormatDocx = "docx"
	FormatText = "txt"
)

// PDFEngine PDF文本提取引擎
type PDFEngine interface {
	ExtractFromBytes(ctx context.Context, data []byte) (string, error)
}

// DocumentExtractor 文档文本提取器
// PDF按"首选引擎→备用引擎"的顺序尝试，两个引擎都失败才报错
type DocumentExtractor struct {
	primary  PDFEngine
	fallback PDFEngine
	timeout  time.Duration
}

// Option 提取器的配置选项
type Option func(*DocumentExtractor)

// WithPDFTimeout 配置单次PDF解析的超时时间
func WithPDFTimeout(timeout time.Duration) Option {
	return func(d *DocumentExtractor) {
		d.timeout = timeout
	}
}

// WithPrimaryEngine 替换首选PDF引擎（主要用于测试）
func WithPrimaryEngine(engine PDFEngine) Option {
	return func(d *DocumentExtractor) {
		d.primary = engine
	}
}

// WithFallbackEngine 替换备用PDF引擎（主要用于测试）
func WithFallbackEngine(engine PDFEngine) Option {
	return func(d *DocumentExtractor) {
		d.fallback = engine
	}
}

// NewDocumentExtractor 创建文档文本提取器
func NewDocumentExtractor(ctx context.Context, options ...Option) (*DocumentExtractor, error) {
	d := &DocumentExtractor{
		timeout:  30 * time.Second,
		fallback: NewLedongthucPDFEngine(),
	}

	for _, option := range options {
		option(d)
	}

	if d.primary == nil {
		primary, err := NewEinoPDFEngine(ctx, d.timeout)
		if err != nil {
			return nil, err
		}
		d.primary = primary
	}

	return d, nil
}

// Extract 根据格式标签提取文档文本
// content为文档的原始字节；纯文本原样返回，不做任何改写
func (d *DocumentExtractor) Extract(ctx context.Context, content []byte, format string) (string, error) {
	switch format {
	case FormatPDF:
		return d.extractPDF(ctx, content)
	case FormatDocx:
		text, err := extractDocxText(content)
		if err != nil {
			return "", NewDocxError("open", err)
		}
		return text, nil
	case FormatText, "text", "plain":
		return string(content), nil
	default:
		return "", &ExtractionError{
			Format:  format,
			Op:      "dispatch",
			BaseErr: ErrUnsupportedFormat,
		}
	}
}

// extractPDF 执行PDF提取的降级链
func (d *DocumentExtractor) extractPDF(ctx context.Context, content []byte) (string, error) {
	text, primaryErr := d.primary.ExtractFromBytes(ctx, content)
	if primaryErr == nil {
		return text, nil
	}
	logger.Warn().Err(primaryErr).Msg("首选PDF引擎失败，降级到备用引擎")

	text, fallbackErr := d.fallback.ExtractFromBytes(ctx, content)
	if fallbackErr == nil {
		return text, nil
	}

	// 两个引擎都失败：报错并携带备用引擎的失败原因，绝不静默返回空文本
	return "", NewPDFError("fallback", fallbackErr)
}
