package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/okr-tracker-api/internal/broadcast"
	"github.com/yukikurage/okr-tracker-api/internal/config"
	"github.com/yukikurage/okr-tracker-api/internal/database"
	"github.com/yukikurage/okr-tracker-api/internal/handlers"
	"github.com/yukikurage/okr-tracker-api/internal/middleware"
	"github.com/yukikurage/okr-tracker-api/internal/repository"
	"github.com/yukikurage/okr-tracker-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	// Broadcast hub for key result change events, closed on shutdown
	hub := broadcast.NewHub()
	defer hub.Close()

	// Repositories
	orgRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	objectiveRepo := repository.NewObjectiveRepository(db)
	keyResultRepo := repository.NewKeyResultRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	ownershipRepo := repository.NewOwnershipRepository(db)
	reactionRepo := repository.NewReactionRepository(db)
	recurringRepo := repository.NewRecurringRepository(db)
	streakRepo := repository.NewStreakRepository(db)

	// Services
	orgService := services.NewOrganizationService(orgRepo, membershipRepo)
	userService := services.NewUserService(userRepo, membershipRepo)
	roleService := services.NewRoleService(roleRepo, membershipRepo)
	groupService := services.NewGroupService(groupRepo, membershipRepo)
	objectiveService := services.NewObjectiveService(objectiveRepo)
	keyResultService := services.NewKeyResultService(keyResultRepo, objectiveRepo, hub)
	membershipService := services.NewMembershipService(membershipRepo)
	ownershipService := services.NewOwnershipService(ownershipRepo)
	reactionService := services.NewReactionService(reactionRepo)
	recurringService := services.NewRecurringService(recurringRepo, keyResultRepo, userRepo)
	streakService := services.NewStreakService(streakRepo)

	// Handlers
	orgHandler := handlers.NewOrganizationHandler(orgService, membershipService)
	userHandler := handlers.NewUserHandler(userService, membershipService, ownershipService)
	roleHandler := handlers.NewRoleHandler(roleService)
	groupHandler := handlers.NewGroupHandler(groupService, membershipService, streakService)
	objectiveHandler := handlers.NewObjectiveHandler(objectiveService, ownershipService)
	keyResultHandler := handlers.NewKeyResultHandler(keyResultService, reactionService, recurringService)
	recurringHandler := handlers.NewRecurringHandler(recurringService, streakService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "OKR Tracker API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	api.Use(middleware.CurrentUser(cfg.CurrentUserID))
	{
		organizations := api.Group("/organizations")
		{
			organizations.POST("", orgHandler.Create)
			organizations.GET("", orgHandler.List)
			organizations.GET("/:id", orgHandler.Get)
			organizations.PATCH("/:id", orgHandler.Update)
			organizations.DELETE("/:id", orgHandler.Delete)
			organizations.GET("/:id/members", orgHandler.GetMembers)
			organizations.POST("/:id/users/:userID", orgHandler.AddUser)
			organizations.DELETE("/:id/users/:userID", orgHandler.RemoveUser)
			organizations.POST("/:id/groups/:groupID", orgHandler.AddGroup)
			organizations.DELETE("/:id/groups/:groupID", orgHandler.RemoveGroup)
		}

		users := api.Group("/users")
		{
			users.POST("", userHandler.Create)
			users.GET("", userHandler.List)
			users.GET("/:id", userHandler.Get)
			users.PATCH("/:id", userHandler.Update)
			users.DELETE("/:id", userHandler.Delete)
			users.GET("/:id/memberships", userHandler.GetMemberships)
			users.GET("/:id/assignments", userHandler.GetAssignments)
			users.POST("/:id/roles/:roleID", userHandler.AddRole)
			users.DELETE("/:id/roles/:roleID", userHandler.RemoveRole)
		}

		roles := api.Group("/roles")
		{
			roles.POST("", roleHandler.Create)
			roles.GET("", roleHandler.List)
			roles.GET("/:id", roleHandler.Get)
			roles.PATCH("/:id", roleHandler.Update)
			roles.DELETE("/:id", roleHandler.Delete)
			roles.GET("/:id/users", roleHandler.GetUsers)
			roles.GET("/:id/groups", roleHandler.GetGroups)
		}

		groups := api.Group("/groups")
		{
			groups.POST("", groupHandler.Create)
			groups.GET("", groupHandler.List)
			groups.GET("/:id", groupHandler.Get)
			groups.PATCH("/:id", groupHandler.Update)
			groups.DELETE("/:id", groupHandler.Delete)
			groups.GET("/:id/members", groupHandler.GetMembers)
			groups.POST("/:id/users/:userID", groupHandler.AddUser)
			groups.DELETE("/:id/users/:userID", groupHandler.RemoveUser)
			groups.POST("/:id/roles/:roleID", groupHandler.AddRole)
			groups.DELETE("/:id/roles/:roleID", groupHandler.RemoveRole)
			groups.GET("/:id/delegates", groupHandler.GetDelegates)
			groups.POST("/:id/delegates/:userID", groupHandler.AddDelegate)
			groups.DELETE("/:id/delegates/:userID", groupHandler.RemoveDelegate)
			groups.POST("/:id/cascade", groupHandler.CascadeObjective)
			groups.DELETE("/:id/cascade/:childID/:objectiveID", groupHandler.RemoveCascadedObjective)
			groups.GET("/:id/cascaded", groupHandler.GetCascadedObjectives)
			groups.GET("/:id/streak", groupHandler.GetStreak)
			groups.POST("/:id/streak/activity", groupHandler.RecordActivity)
		}
		api.PATCH("/cascaded/:cascadedID", groupHandler.ToggleCascadedObjective)

		objectives := api.Group("/objectives")
		{
			objectives.POST("", objectiveHandler.Create)
			objectives.GET("", objectiveHandler.List)
			objectives.GET("/:id", objectiveHandler.Get)
			objectives.PATCH("/:id", objectiveHandler.Update)
			objectives.DELETE("/:id", objectiveHandler.Delete)
			objectives.GET("/:id/ownerships", objectiveHandler.ListOwnerships)
			objectives.POST("/:id/ownerships", objectiveHandler.AddOwnership)
			objectives.DELETE("/:id/ownerships/:ownerType/:ownerID", objectiveHandler.RemoveOwnership)
		}

		keyResults := api.Group("/key-results")
		{
			keyResults.POST("", keyResultHandler.Create)
			keyResults.GET("", keyResultHandler.List)
			keyResults.GET("/:id", keyResultHandler.Get)
			keyResults.PATCH("/:id", keyResultHandler.Update)
			keyResults.DELETE("/:id", keyResultHandler.Delete)
			keyResults.POST("/:id/reactions/toggle", keyResultHandler.ToggleReaction)
			keyResults.GET("/:id/reactions", keyResultHandler.GetReactionSummary)
			keyResults.POST("/:id/recurring", keyResultHandler.CreateRecurringSchedule)
			keyResults.GET("/:id/recurring", keyResultHandler.GetRecurringSchedule)
			keyResults.PATCH("/:id/recurring", keyResultHandler.UpdateRecurringSchedule)
			keyResults.DELETE("/:id/recurring", keyResultHandler.DeleteRecurringSchedule)
		}

		recurring := api.Group("/recurring")
		{
			recurring.GET("", recurringHandler.List)
			recurring.GET("/due-today", recurringHandler.DueToday)
			recurring.POST("/regenerate", recurringHandler.Regenerate)
		}
		api.POST("/streaks/reset-stale", recurringHandler.ResetStaleStreaks)
	}

	// Start server
	log.Printf("Server starting on %s", cfg.ServerAddr)
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
