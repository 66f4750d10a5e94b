package utils

type Pagination struct {
	Page      int   `json:"page"`
	Size      int   `json:"size"`
	TotalRows int64 `json:"totalRows"`
	TotalPage int   `json:"totalPage"`
}

// NormalizePage clamps the requested page/size to sane values; size falls
// back to defaultSize when the caller sends nothing.
func NormalizePage(page, size, defaultSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 200 {
		size = defaultSize
	}
	return page, size
}

func NewPagination(page, size int, totalRows int64) Pagination {
	totalPage := int(totalRows) / size
	if int(totalRows)%size != 0 {
		totalPage++
	}
	return Pagination{
		Page:      page,
		Size:      size,
		TotalRows: totalRows,
		TotalPage: totalPage,
	}
}

func Offset(page, size int) int {
	return (page - 1) * size
}
