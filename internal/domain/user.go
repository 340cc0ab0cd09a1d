package domain

// User - аутентифицированный пользователь. ID непрозрачен для ядра;
// для анонимного входа DisplayName и Email отсутствуют.
type User struct {
	ID          string  `json:"id"`
	DisplayName *string `json:"display_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Anonymous   bool    `json:"anonymous"`
}
