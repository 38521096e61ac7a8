package products

// ListQuery holds the catalog listing filters
type ListQuery struct {
	Category string `form:"category"`
	Color    string `form:"color"`
	Size     string `form:"size"`
	Grouped  bool   `form:"grouped"`
	Skip     int    `form:"skip,default=0" binding:"gte=0"`
	Limit    int    `form:"limit,default=50" binding:"gte=1,lte=100"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
