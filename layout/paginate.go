package layout

// Paginate 返回第 page 页（从 1 开始）的行，每页最多 perPage 行。
// page 为 0 或 perPage 不大于 0 时返回全部行；越界的页返回空切片。
func Paginate(lines []string, page, perPage int) []string {
	if page < 1 || perPage <= 0 {
		return lines
	}
	start := (page - 1) * perPage
	if start >= len(lines) {
		return []string{}
	}
	end := min(start+perPage, len(lines))
	return lines[start:end]
}

// PageCount 返回 total 行按每页 perPage 行分页后的页数，至少为 1。
func PageCount(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}
