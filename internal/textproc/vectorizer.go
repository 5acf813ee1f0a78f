package textproc

import (
	"math"
	"sort"
	"strings"

	"github.com/james-bowman/sparse"
)

const (
	// MaxVocabulary 向量空间的词表容量上限
	MaxVocabulary = 1000

	ngramMax = 2 // 构造1元和2元词组
)

// Vectoriser 将一组文档转换为同一TF-IDF向量空间下的稀疏向量
// 每次 FitTransform 都只在传入的文档上拟合，调用之间不共享任何状态
type Vectoriser struct {
	maxFeatures int
	stopWords   map[string]struct{}
}

// NewVectoriser 创建向量化器，maxFeatures<=0 表示不限制词表容量
func NewVectoriser(maxFeatures int) *Vectoriser {
	return &Vectoriser{
		maxFeatures: maxFeatures,
		stopWords:   buildStopWordSet(),
	}
}

// filterStopWords 去除停用词，停用词不参与词组构造
func (v *Vectoriser) filterStopWords(tokens []string) []string {
	filtered := tokens[:0:0]
	for _, token := range tokens {
		if _, ok := v.stopWords[token]; !ok {
			filtered = append(filtered, token)
		}
	}
	return filtered
}

// ngrams 在词序列上构造1到ngramMax元的词组，多元词组用空格连接
func (v *Vectoriser) ngrams(tokens []string) []string {
	terms := make([]string, 0, len(tokens)*ngramMax)
	for n := 1; n <= ngramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}

// FitTransform 在给定文档上拟合词表，返回词表和每篇文档的TF-IDF向量
// 词表按字典序排列；超出容量时按全语料词频截断，频次相同按字典序优先。
// IDF使用平滑公式 ln((1+n)/(1+df))+1，向量经L2归一化。
// 所有文档都没有可用词项时返回 (nil, nil)。
func (v *Vectoriser) FitTransform(docs ...string) ([]string, []*sparse.Vector) {
	docCounts := make([]map[string]int, len(docs))
	totalCount := make(map[string]int)
	docFreq := make(map[string]int)

	for i, doc := range docs {
		tokens := v.filterStopWords(Tokenize(doc))
		counts := make(map[string]int)
		for _, term := range v.ngrams(tokens) {
			counts[term]++
		}
		docCounts[i] = counts
		for term, c := range counts {
			totalCount[term] += c
			docFreq[term]++
		}
	}

	vocab := make([]string, 0, len(totalCount))
	for term := range totalCount {
		vocab = append(vocab, term)
	}
	sort.Strings(vocab)

	if v.maxFeatures > 0 && len(vocab) > v.maxFeatures {
		sort.SliceStable(vocab, func(i, j int) bool {
			return totalCount[vocab[i]] > totalCount[vocab[j]]
		})
		vocab = vocab[:v.maxFeatures]
		sort.Strings(vocab)
	}

	if len(vocab) == 0 {
		return nil, nil
	}

	numDocs := float64(len(docs))
	idf := make([]float64, len(vocab))
	for i, term := range vocab {
		idf[i] = math.Log((1+numDocs)/(1+float64(docFreq[term]))) + 1
	}

	vectors := make([]*sparse.Vector, len(docs))
	for i, counts := range docCounts {
		var ind []int
		var data []float64
		var sumSquares float64
		for j, term := range vocab {
			c, ok := counts[term]
			if !ok {
				continue
			}
			w := float64(c) * idf[j]
			ind = append(ind, j)
			data = append(data, w)
			sumSquares += w * w
		}
		if sumSquares > 0 {
			norm := math.Sqrt(sumSquares)
			for k := range data {
				data[k] /= norm
			}
		}
		vectors[i] = sparse.NewVector(len(vocab), ind, data)
	}

	return vocab, vectors
}

// TopKeywords 提取文本中最重要的关键词
// 在单篇文档上拟合TF-IDF后按得分降序排列，得分相同时保持词表原有顺序，
// 返回前topN个得分严格为正的词项
func TopKeywords(text string, topN int) []string {
	processed := Normalize(text)

	vocab, vectors := NewVectoriser(MaxVocabulary).FitTransform(processed)
	if len(vocab) == 0 {
		return nil
	}

	vec := vectors[0]
	order := make([]int, len(vocab))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return vec.AtVec(order[a]) > vec.AtVec(order[b])
	})

	keywords := make([]string, 0, topN)
	for _, idx := range order {
		if len(keywords) >= topN {
			break
		}
		if vec.AtVec(idx) > 0 {
			keywords = append(keywords, vocab[idx])
		}
	}
	return keywords
}
