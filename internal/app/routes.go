package app

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ahamedusman/portfolio-core/internal/middleware"
	"github.com/ahamedusman/portfolio-core/internal/modules/blog"
	"github.com/ahamedusman/portfolio-core/internal/modules/contact"
	"github.com/ahamedusman/portfolio-core/internal/modules/experience"
	"github.com/ahamedusman/portfolio-core/internal/modules/offering"
	"github.com/ahamedusman/portfolio-core/internal/modules/project"
	"github.com/ahamedusman/portfolio-core/internal/modules/site"
	"github.com/ahamedusman/portfolio-core/internal/modules/skill"
	"github.com/ahamedusman/portfolio-core/internal/modules/testimonial"
	"github.com/ahamedusman/portfolio-core/internal/pkg/mail"
	pkgredis "github.com/ahamedusman/portfolio-core/internal/pkg/redis"
	"github.com/ahamedusman/portfolio-core/internal/pkg/response"
)

func (a *App) registerRoutes(rc *pkgredis.Client, sender mail.Sender) {
	r := a.router
	db := a.db
	adminMW := middleware.AdminToken(a.cfg.AdminToken, a.logger)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Not found")
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	r.Use(middleware.RateLimit(rc))
	r.Use(middleware.CacheInvalidate(rc))
	r.Use(middleware.HTTPCache(rc, time.Duration(a.cfg.CacheTTL)*time.Second))

	r.GET("/", func(c *gin.Context) {
		response.OK(c, gin.H{
			"name":     "portfolio-core",
			"author":   "Ahamed Usman",
			"version":  "1.0.0",
			"homepage": "https://github.com/ahamedusman/portfolio-core",
		})
	})

	root := r.Group("")
	site.NewHandler(site.NewService(db)).RegisterRoutes(root)
	skill.NewHandler(skill.NewService(db)).RegisterRoutes(root)
	experience.NewHandler(experience.NewService(db)).RegisterRoutes(root)
	offering.NewHandler(offering.NewService(db)).RegisterRoutes(root)
	project.NewHandler(project.NewService(db)).RegisterRoutes(root)
	testimonial.NewHandler(testimonial.NewService(db)).RegisterRoutes(root, adminMW)
	blog.NewHandler(blog.NewService(db)).RegisterRoutes(root, adminMW)

	to := a.cfg.ContactTo
	if to == "" {
		to = a.cfg.Mail.From
	}
	if to == "" {
		to = a.cfg.Mail.User
	}
	contact.NewHandler(contact.NewService(sender, to)).RegisterRoutes(root)
}
