package api

// ProjectRequest 用於建立與更新專案；name 前後空白會被去除
// swagger:model api.ProjectRequest
type ProjectRequest struct {
	Name         string  `json:"name" form:"name" validate:"required,notblank,max=200" example:"Apollo"`
	ThumbnailURL *string `json:"thumbnail_url" form:"thumbnail_url" validate:"omitempty,max=2048" example:"https://cdn.example.com/apollo.png"`
}
