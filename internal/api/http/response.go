package apiHttp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// User-facing messages, kept in zh-TW like the rest of the product.
const (
	msgInvalidEmail     = "請輸入有效的Email地址"
	msgCodeSent         = "驗證碼已發送到您的郵箱"
	msgSendFailedRetry  = "發送失敗，請稍後再試"
	msgVerifySucceeded  = "Email驗證成功"
	msgVerifyInvalid    = "驗證碼錯誤或已過期"
	msgVerifyFailed     = "驗證失敗"
	msgMissingParams    = "缺少必要參數"
	msgDebateResultSent = "辯論成果已發送到您的郵箱"
	msgDebateSendFailed = "發送失敗"
	msgResourceNotFound = "找不到該資源"
	msgInternalError    = "伺服器內部錯誤"
)

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
} // @name SuccessResponse

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
} // @name ErrorResponse

func successResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: message})
}

func errorResponse(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Success: false, Error: message})
}

func notFoundResponse(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": msgResourceNotFound})
}
