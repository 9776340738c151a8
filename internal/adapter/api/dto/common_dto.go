package dto

// ErrorResponse representa a estrutura de resposta para erros
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse representa uma resposta genérica de sucesso
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// NewSuccessResponse cria uma nova resposta de sucesso
func NewSuccessResponse(message string, data interface{}) SuccessResponse {
	return SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse cria uma nova resposta de erro
func NewErrorResponse(code int, message, details string) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Pagination representa os metadados de paginação nas listagens
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Size       int `json:"size"`
	TotalPages int `json:"total_pages"`
}

// NewPagination monta os metadados a partir do total e da página corrente
func NewPagination(total, page, size int) Pagination {
	totalPages := 0
	if size > 0 {
		totalPages = (total + size - 1) / size
	}
	return Pagination{
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages,
	}
}

// NormalizePagination aplica valores padrão e teto aos parâmetros de página
func NormalizePagination(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}

	if size < 1 {
		size = 10
	} else if size > 100 {
		size = 100 // Limitar a 100 itens por página
	}

	return page, size
}
