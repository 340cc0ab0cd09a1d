package dto

// SubmitReportRequest - запрос на создание отчёта. Координаты могут
// отсутствовать (валидируется композитором), но присутствующие значения
// обязаны попадать в допустимые диапазоны.
type SubmitReportRequest struct {
	Category    string            `json:"category" validate:"required,oneof=barrier facilitator poi"`
	Lat         *float64          `json:"lat" validate:"omitempty,gte=-90,lte=90"`
	Lon         *float64          `json:"lon" validate:"omitempty,gte=-180,lte=180"`
	Description string            `json:"description"`
	Tags        map[string]string `json:"tags"`
}

// LayerQuery - видимость слоёв из query-параметров; nil означает
// значение по умолчанию (слой включён)
type LayerQuery struct {
	Barriers     *bool
	Facilitators *bool
	POIs         *bool
}
