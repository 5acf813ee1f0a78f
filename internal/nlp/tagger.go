// Package nlp 封装命名实体标注器。
// 标注模型初始化开销较大，通过单例在多次分析间复用；
// 模型不可用时在构造阶段直接失败，而不是留到每次调用时报错。
package nlp

import (
	"fmt"

	prose "github.com/jdkato/prose/v2"
)

// Tagger 命名实体标注器
type Tagger struct {
	docOptions []prose.DocOpt
}

// newTagger 初始化标注器并验证底层模型可用
func newTagger() (*Tagger, error) {
	docOptions := []prose.DocOpt{
		prose.WithSegmentation(false),
	}
	// 用一小段文本做预热，确保模型数据能够加载
	if _, err := prose.NewDocument("warm up", docOptions...); err != nil {
		return nil, fmt.Errorf("初始化命名实体标注模型失败: %w", err)
	}
	return &Tagger{docOptions: docOptions}, nil
}

// Entities 对文本做实体标注，按标注器输出顺序返回标签命中labels的实体文本
// 重复实体不去重，调用方按原始顺序消费
func (t *Tagger) Entities(text string, labels ...string) ([]string, error) {
	if text == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(text, t.docOptions...)
	if err != nil {
		return nil, fmt.Errorf("实体标注失败: %w", err)
	}

	wanted := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		wanted[label] = struct{}{}
	}

	var entities []string
	for _, ent := range doc.Entities() {
		if _, ok := wanted[ent.Label]; ok {
			entities = append(entities, ent.Text)
		}
	}
	return entities, nil
}
