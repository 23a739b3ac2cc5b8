package transport

type TaskCreateRequest struct {
	Title string `json:"title"`
}

type FilterRequest struct {
	Filter string `json:"filter"`
}

type ThemeRequest struct {
	Theme string `json:"theme"`
}
