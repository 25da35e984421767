package domain

import "context"

// TrustPolicies 商品信任条款
type TrustPolicies struct {
	Warranty     string `json:"warranty"`
	ReturnPolicy string `json:"return_policy"`
}

// CopyGenerator 文案生成服务接口，由外部文本生成服务实现。
// 任何方法失败时由调用方降级为固定文案，不向用户暴露错误。
type CopyGenerator interface {
	// Description 生成商品描述
	Description(ctx context.Context, name, category string) (string, error)
	// Analysis 生成商品卖点短评
	Analysis(ctx context.Context, name string) (string, error)
	// SEOData 生成 SEO 元数据
	SEOData(ctx context.Context, name, category string) (*SEOData, error)
	// TrustPolicies 生成保修与退货条款
	TrustPolicies(ctx context.Context, name, category string) (*TrustPolicies, error)
}
