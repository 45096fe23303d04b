package model

type CatalogRequestBody struct {
	Key   string `json:"key"`
	Mode  string `json:"mode"`
	Sizes []int  `json:"sizes"`
}

type CatalogResponse struct {
	Key     string  `json:"key"`
	Mode    string  `json:"mode"`
	Scale   Notes   `json:"scale"`
	Catalog Catalog `json:"catalog"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
