package dto

// UploadSummary resumen de una carga confirmada.
type UploadSummary struct {
	ProductsProcessed int `json:"products_processed"`
	RecordsCreated    int `json:"records_created"`
}

// UploadResponse respuesta del endpoint de carga cuando la transacción confirma.
type UploadResponse struct {
	Success bool          `json:"success"`
	Summary UploadSummary `json:"summary"`
}
