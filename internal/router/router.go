package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/edustack/edustack-backend/internal/config"
	"github.com/edustack/edustack-backend/internal/handler"
	"github.com/edustack/edustack-backend/internal/middleware"
	"github.com/edustack/edustack-backend/internal/response"
	"github.com/edustack/edustack-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth     *handler.AuthHandler
	Student  *handler.StudentHandler
	Batch    *handler.BatchHandler
	Category *handler.CategoryHandler
	Course   *handler.CourseHandler
	Quiz     *handler.QuizHandler
	Module   *handler.ModuleHandler
	Class    *handler.ClassHandler
	User     *handler.UserHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowCredentials = !corsConfig.AllowAllOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.OK(c, http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(authService)

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)
		auth.GET("/getMe", requireAuth, handlers.Auth.GetMe)

		// Student directory lives under the auth prefix for
		// compatibility with existing clients.
		auth.GET("/getAllStudents", requireAuth, handlers.Student.GetStudents)
		auth.GET("/students/:id", requireAuth, handlers.Student.GetStudent)
		auth.GET("/getStudentsByBatch/:batchId", requireAuth, handlers.Student.SearchByBatch)
		auth.GET("/getStudentsByCourse/:courseId", requireAuth, handlers.Student.SearchByCourse)
		auth.PUT("/updateStudent/:id", requireAuth, handlers.Student.UpdateStudent)
		auth.DELETE("/deleteStudent/:id", requireAuth, handlers.Student.DeleteStudent)
	}

	batch := router.Group("/api/v1/batch")
	{
		batch.GET("/getAllBatches", handlers.Batch.GetBatches)
		batch.GET("/:id", handlers.Batch.GetBatch)
		batch.POST("/createBatch", handlers.Batch.CreateBatch)
		batch.PUT("/:id", requireAuth, handlers.Batch.UpdateBatch)
		batch.DELETE("/:id", requireAuth, handlers.Batch.DeleteBatch)
	}

	category := router.Group("/api/v1/category")
	{
		category.GET("/", handlers.Category.GetCategories)
		category.GET("/:id", handlers.Category.GetCategory)
		category.POST("/", handlers.Category.CreateCategory)
		category.PUT("/:id", handlers.Category.UpdateCategory)
		category.DELETE("/:id", handlers.Category.DeleteCategory)
	}

	course := router.Group("/api/v1/course")
	{
		course.GET("/getAllCourse", handlers.Course.GetCourses)
		course.GET("/:id", handlers.Course.GetCourse)
		course.POST("/createCourse", handlers.Course.CreateCourse)
		course.PUT("/:id", handlers.Course.UpdateCourse)
		course.DELETE("/:id", handlers.Course.DeleteCourse)
	}

	quiz := router.Group("/api/v1/quiz")
	{
		quiz.GET("/questions", handlers.Quiz.GetQuestions)
		quiz.POST("/submit", handlers.Quiz.SubmitQuiz)
		quiz.POST("/question", handlers.Quiz.AddQuestion)
		quiz.PUT("/question/:id", handlers.Quiz.UpdateQuestion)
	}

	modules := router.Group("/api/v1/modules")
	{
		modules.GET("/", handlers.Module.GetModules)
		modules.GET("/:id", handlers.Module.GetModule)
		modules.POST("/", handlers.Module.CreateModule)
		modules.PUT("/:id", handlers.Module.UpdateModule)
		modules.DELETE("/:id", handlers.Module.DeleteModule)
	}

	classes := router.Group("/api/v1/classes")
	{
		classes.GET("/", handlers.Class.GetClasses)
		classes.GET("/:id", handlers.Class.GetClass)
		classes.POST("/", handlers.Class.CreateClass)
		classes.PUT("/:id", handlers.Class.UpdateClass)
		classes.DELETE("/:id", handlers.Class.DeleteClass)
	}

	users := router.Group("/api/v1/users")
	{
		users.GET("/", handlers.User.GetUsers)
		users.GET("/:id", handlers.User.GetUser)
		users.POST("/", handlers.User.CreateUser)
		users.PUT("/:id", handlers.User.UpdateUser)
		users.DELETE("/:id", handlers.User.DeleteUser)
	}

	return router
}
