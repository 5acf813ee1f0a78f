package parser

import (
	"errors"
	"fmt"
)

// 定义基础错误类型
var (
	ErrPDFExtractFailed  = errors.New("提取PDF文本失败")
	ErrDocxExtractFailed = errors.New("提取DOCX文本失败")
	ErrUnsupportedFormat = errors.New("不支持的文档格式")
)

// ExtractionError 文档提取失败时携带详细信息的自定义错误
// Cause保留底层引擎的原始错误，供调用方判断失败原因
type ExtractionError struct {
	Format  string
	Op      string
	BaseErr error
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (格式:%s, 操作:%s): %v", e.BaseErr, e.Format, e.Op, e.Cause)
	}
	return fmt.Sprintf("%s (格式:%s, 操作:%s)", e.BaseErr, e.Format, e.Op)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *ExtractionError) Is(target error) bool {
	return errors.Is(e.BaseErr, target) || errors.Is(e.Cause, target)
}

// 错误构造函数
func NewPDFError(op string, cause error) error {
	return &ExtractionError{
		Format:  FormatPDF,
		Op:      op,
		BaseErr: ErrPDFExtractFailed,
		Cause:   cause,
	}
}

func NewDocxError(op string, cause error) error {
	return &ExtractionError{
		Format:  FormatDocx,
		Op:      op,
		BaseErr: ErrDocxExtractFailed,
		Cause:   cause,
	}
}
