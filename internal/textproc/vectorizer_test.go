package textproc

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFitTransformBasic 验证词表构建和向量形状
func TestFitTransformBasic(t *testing.T) {
	v := NewVectoriser(MaxVocabulary)
	vocab, vectors := v.FitTransform("go developer", "python developer")

	require.Len(t, vectors, 2)
	// 1元: developer, go, python; 2元: go developer, python developer
	assert.ElementsMatch(t, []string{"developer", "go", "go developer", "python", "python developer"}, vocab)
	assert.True(t, sort.StringsAreSorted(vocab), "词表应按字典序排列")
	for _, vec := range vectors {
		assert.Equal(t, len(vocab), vec.Len())
	}
}

// TestFitTransformStopWords 验证停用词不进入词表
func TestFitTransformStopWords(t *testing.T) {
	v := NewVectoriser(MaxVocabulary)
	vocab, _ := v.FitTransform("the quick and the lazy developer")

	assert.NotContains(t, vocab, "the")
	assert.NotContains(t, vocab, "and")
	assert.Contains(t, vocab, "quick")
	assert.Contains(t, vocab, "lazy developer", "停用词移除后应在剩余词序列上构造词组")
}

// TestFitTransformMaxFeatures 验证词表容量截断按词频优先
func TestFitTransformMaxFeatures(t *testing.T) {
	v := NewVectoriser(2)
	vocab, _ := v.FitTransform("alpha alpha alpha beta beta gamma")

	require.Len(t, vocab, 2)
	assert.Contains(t, vocab, "alpha")
	assert.Contains(t, vocab, "beta")
}

// TestFitTransformEmptyInput 验证没有可用词项时返回nil而不报错
func TestFitTransformEmptyInput(t *testing.T) {
	v := NewVectoriser(MaxVocabulary)

	vocab, vectors := v.FitTransform("")
	assert.Nil(t, vocab)
	assert.Nil(t, vectors)

	// 全部是停用词或单字符词
	vocab, vectors = v.FitTransform("a the of")
	assert.Nil(t, vocab)
	assert.Nil(t, vectors)
}

// TestTopKeywords 验证关键词按相关性排序且只返回正得分词项
func TestTopKeywords(t *testing.T) {
	text := "python python python developer developer kubernetes"
	keywords := TopKeywords(text, 20)

	require.NotEmpty(t, keywords)
	assert.Equal(t, "python", keywords[0], "出现最多的词应排在最前")
	assert.Contains(t, keywords, "developer")
	assert.Contains(t, keywords, "kubernetes")
}

// TestTopKeywordsCap 验证数量上限
func TestTopKeywordsCap(t *testing.T) {
	text := "alpha bravo charlie delta echo foxtrot golf hotel india juliett " +
		"kilo lima mike november oscar papa quebec romeo sierra tango uniform victor"
	keywords := TopKeywords(text, 20)
	assert.LessOrEqual(t, len(keywords), 20)
}

// TestTopKeywordsEmptyText 验证空文本返回nil而不报错
func TestTopKeywordsEmptyText(t *testing.T) {
	assert.Nil(t, TopKeywords("", 20))
}
