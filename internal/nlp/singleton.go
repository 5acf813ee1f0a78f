package nlp

import "sync"

var (
	taggerInstance *Tagger
	taggerOnce     sync.Once
	taggerMutex    sync.Mutex
)

// GetTagger 获取Tagger的单例实例
// 如果实例不存在则创建，存在则返回已有实例
func GetTagger() (*Tagger, error) {
	if taggerInstance != nil {
		return taggerInstance, nil
	}

	taggerMutex.Lock()
	defer taggerMutex.Unlock()

	if taggerInstance != nil {
		return taggerInstance, nil
	}

	var err error
	taggerOnce.Do(func() {
		taggerInstance, err = newTagger()
	})

	return taggerInstance, err
}

// ResetTagger 重置Tagger单例（主要用于测试）
func ResetTagger() {
	taggerMutex.Lock()
	defer taggerMutex.Unlock()
	taggerInstance = nil
	taggerOnce = sync.Once{}
}
