package textproc

import (
	"math"

	"github.com/james-bowman/nlp/measures/pairwise"
)

// Similarity 计算两段文本的TF-IDF余弦相似度，结果落在[0,1]区间
// 两篇文档在同一次拟合得到的向量空间中比较，因此相似度是对称的，
// 相同文本的自相似度在浮点误差内等于1.0。
// 任一文本没有可用词项时返回0.0，不报错。
func Similarity(textA, textB string) float64 {
	processedA := Normalize(textA)
	processedB := Normalize(textB)

	vocab, vectors := NewVectoriser(MaxVocabulary).FitTransform(processedA, processedB)
	if len(vocab) == 0 {
		return 0.0
	}

	similarity := pairwise.CosineSimilarity(vectors[0], vectors[1])
	if math.IsNaN(similarity) {
		// 零向量（如空文档）与任何向量的夹角无定义，按无相似处理
		return 0.0
	}

	// 数值误差可能让结果略微越界
	if similarity < 0 {
		return 0.0
	}
	if similarity > 1 {
		return 1.0
	}
	return similarity
}
