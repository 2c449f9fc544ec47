package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, message string, id uint) {
	body := gin.H{"status": "success", "message": message}
	if id != 0 {
		body["id"] = id
	}
	c.JSON(code, body)
}

func JSONError(c *gin.Context, code int, errCode, message string) {
	c.JSON(code, gin.H{"status": "error", "code": errCode, "message": message})
}

// JSONValidationError answers 400 with the offending fields.
func JSONValidationError(c *gin.Context, code int, message string, fields map[string][]string) {
	c.JSON(code, gin.H{
		"status":  "error",
		"code":    "error.validation",
		"message": message,
		"details": fields,
	})
}
