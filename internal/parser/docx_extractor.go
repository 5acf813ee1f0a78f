package parser

import (
	"bytes"
	"html"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var (
	paragraphSplitRegexp = regexp.MustCompile(`</w:p>`)
	textRunRegexp        = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)
)

// extractDocxText 从DOCX字节内容中按文档顺序提取段落文本，每段一行
func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	return docxParagraphText(doc.Editable().GetContent()), nil
}

// docxParagraphText 把WordprocessingML内容还原为纯文本，每个段落一行
// 每个 </w:p> 结束一个段落，段内文本分散在若干 <w:t> 节点里
func docxParagraphText(content string) string {
	var builder strings.Builder
	for _, paragraph := range paragraphSplitRegexp.Split(content, -1) {
		var line strings.Builder
		for _, run := range textRunRegexp.FindAllStringSubmatch(paragraph, -1) {
			line.WriteString(html.UnescapeString(run[1]))
		}
		builder.WriteString(line.String())
		builder.WriteString("\n")
	}
	return builder.String()
}
