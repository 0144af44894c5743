package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/idrissziadi/stage-sub004/pkg/response"
)

// visiteur seau à jetons d'un client, horodaté pour l'éviction
type visiteur struct {
	limiter *rate.Limiter
	vu      time.Time
}

// RateLimit limite chaque IP cliente à rps requêtes par seconde avec une
// rafale de burst. Les seaux inactifs depuis plus de trois minutes sont
// évincés en arrière-plan.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	var (
		mu        sync.Mutex
		visiteurs = make(map[string]*visiteur)
	)

	go func() {
		for range time.Tick(time.Minute) {
			mu.Lock()
			for ip, v := range visiteurs {
				if time.Since(v.vu) > 3*time.Minute {
					delete(visiteurs, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		v, ok := visiteurs[ip]
		if !ok {
			v = &visiteur{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
			visiteurs[ip] = v
		}
		v.vu = time.Now()
		autorise := v.limiter.Allow()
		mu.Unlock()

		if !autorise {
			response.Error(c, http.StatusTooManyRequests, 10005, "trop de requêtes, réessayez plus tard")
			c.Abort()
			return
		}

		c.Next()
	}
}
