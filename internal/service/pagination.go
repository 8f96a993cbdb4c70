package service

// Pagination 描述一次分页查询的结果元数据。
type Pagination struct {
	CurrentPage int
	PerPage     int
	TotalPages  int
	TotalPosts  int64
	HasNext     bool
	HasPrevious bool
}

// paginate clamps page into [1, totalPages] and returns the metadata plus the
// row offset for the requested slice. An empty result has zero pages and
// stays on page 1.
func paginate(total int64, page, perPage int) (Pagination, int) {
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if page <= 0 {
		page = 1
	}

	// 先除后补余数，避免 per_page 极大时 total+perPage-1 溢出
	totalPages := int(total / int64(perPage))
	if total%int64(perPage) != 0 {
		totalPages++
	}
	if totalPages == 0 {
		page = 1
	} else if page > totalPages {
		page = totalPages
	}

	result := Pagination{
		CurrentPage: page,
		PerPage:     perPage,
		TotalPages:  totalPages,
		TotalPosts:  total,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
	return result, (page - 1) * perPage
}
