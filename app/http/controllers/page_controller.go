// Package controllers 非 API 页面
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const landingPage = `<!DOCTYPE html>
<html>
<head>
    <title>Luvo Tarot API</title>
    <style>
        body { font-family: Arial, sans-serif; background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 50px; text-align: center; }
        h1 { font-size: 3em; margin-bottom: 20px; }
        p { font-size: 1.2em; }
        a { color: #ffd700; text-decoration: none; }
        a:hover { text-decoration: underline; }
    </style>
</head>
<body>
    <h1>🔮 Luvo Tarot API</h1>
    <p>Добро пожаловать в API для гадания на картах Таро!</p>
    <p><a href="/api/cards">🃏 Колода</a></p>
    <p><a href="/api/spreads">📖 Расклады</a></p>
</body>
</html>
`

// PagesController 首页
type PagesController struct{}

// Home GET /
func (pc *PagesController) Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(landingPage))
}
