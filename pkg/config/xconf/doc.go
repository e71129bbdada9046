// Package xconf 提供配置文件的加载与反序列化，基于 koanf 实现。
//
// 支持 YAML（.yaml/.yml）与 JSON（.json）两种格式，按扩展名识别。
// 也可以通过 [NewFromBytes] 从内存数据加载，适用于测试或嵌入式配置。
//
// # 默认值
//
// [WithDefaults] 注入的键值先于文件内容加载，文件中出现的键覆盖默认值：
//
//	cfg, err := xconf.New("bench.yaml", xconf.WithDefaults(map[string]any{
//		"run.workers": 4,
//	}))
//
// # 并发安全
//
// Reload 构建新的 koanf 实例后整体替换，读操作看到的要么是旧快照，要么是新快照。
// 从字节创建的配置不支持 Reload，调用返回 [ErrReloadUnsupported]。
package xconf
