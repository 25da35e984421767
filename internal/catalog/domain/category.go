package domain

// Category 分类树节点，最多三级
type Category struct {
	// 分类 ID
	ID string `json:"id"`
	// 展示名
	Name string `json:"name"`
	// URL slug
	Slug string `json:"slug"`
	// 层级：1..3
	Level int `json:"level"`
	// 父分类 ID，顶级为空
	ParentID string `json:"parent_id,omitempty"`
	// 图标
	Icon string `json:"icon,omitempty"`
	// 商品数
	ItemCount int `json:"item_count,omitempty"`
	// 有序子分类
	Children []*Category `json:"children,omitempty"`
}

// Breadcrumb 面包屑条目
type Breadcrumb struct {
	Name       string `json:"name"`
	CategoryID string `json:"category_id,omitempty"`
}

// FindCategory 在子树中按 ID 递归查找
func FindCategory(nodes []*Category, id string) *Category {
	for _, n := range nodes {
		if n.ID == id {
			return n
		}
		if found := FindCategory(n.Children, id); found != nil {
			return found
		}
	}
	return nil
}
