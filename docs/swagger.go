// Package docs Accessibility Map Service API.
//
// Сервис общественной карты доступности. Принимает отчёты пользователей
// о барьерах, помощниках и доступных местах, отдаёт точки по категориям
// с фильтрацией слоёв и генерирует natural-language сводку по району.
//
// Основные возможности:
// - Анонимная аутентификация (JWT)
// - Точки доступности по категориям с фильтрацией слоёв
// - Приём пользовательских отчётов с публикацией в живую ленту
// - Natural-language сводка по району с кешированием
// - Отладочный snapshot состояния карты
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- api_key:
//
//	SecurityDefinitions:
//	api_key:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package docs
