package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the HTML shells for the login, register and dashboard
// pages. The pages exist to carry the middleware's redirect semantics; the
// real UI consumes the JSON API.
type PageHandler struct{}

// NewPageHandler creates a new PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

const loginPage = `<!DOCTYPE html>
<html>
<head><title>Login - Task Manager</title></head>
<body>
<h1>Login</h1>
<form method="post" action="/api/login">
<input name="username" placeholder="Username" />
<input name="password" type="password" placeholder="Password" />
<button type="submit">Login</button>
</form>
</body>
</html>`

const registerPage = `<!DOCTYPE html>
<html>
<head><title>Register - Task Manager</title></head>
<body>
<h1>Register</h1>
<form method="post" action="/api/register">
<input name="fullname" placeholder="Full name" />
<input name="username" placeholder="Username" />
<input name="email" type="email" placeholder="Email" />
<input name="password" type="password" placeholder="Password" />
<input name="confirmPassword" type="password" placeholder="Confirm password" />
<button type="submit">Register</button>
</form>
</body>
</html>`

const dashboardPage = `<!DOCTYPE html>
<html>
<head><title>Dashboard - Task Manager</title></head>
<body>
<h1>Dashboard</h1>
<nav>
<a href="/dashboard/projects">Projects</a>
<a href="/dashboard/tasks">Tasks</a>
<a href="/dashboard/users">Users</a>
</nav>
</body>
</html>`

const homePage = `<!DOCTYPE html>
<html>
<head><title>Task Manager</title></head>
<body>
<h1>Task Manager</h1>
<p>Track projects and tasks in one place.</p>
<a href="/login">Login</a>
<a href="/register">Register</a>
</body>
</html>`

func (h *PageHandler) Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(homePage))
}

func (h *PageHandler) Login(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(loginPage))
}

func (h *PageHandler) Register(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(registerPage))
}

func (h *PageHandler) Dashboard(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(dashboardPage))
}
