package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"concurso-hunter/internal/cache"
	"concurso-hunter/internal/config"
	"concurso-hunter/internal/deeplink"
	"concurso-hunter/internal/filter"
	"concurso-hunter/internal/reporter"
	"concurso-hunter/internal/scheduler"
	"concurso-hunter/internal/scraper"
)

// searchRequest mirrors the shape the frontend always posted: free-form
// salary string, comma-separated keyword lists, UF and region arrays.
type searchRequest struct {
	SalarioMinimo  any      `json:"salario_minimo"`
	PalavraChave   string   `json:"palavra_chave"`
	ExcluirPalavra string   `json:"excluir_palavra"`
	UFs            []string `json:"ufs"`
	Regioes        []string `json:"regioes"`
	Escolaridade   []string `json:"escolaridade"`
}

type deepLinkRequest struct {
	URL  string `json:"url"`
	Tipo string `json:"tipo"`
}

var nonSalaryChars = regexp.MustCompile(`[^\d,]`)

// parseSalary cleans a free-form salary string ("R$ 3.000,00") into a
// float. Anything unparseable means "no floor".
func parseSalary(raw any) float64 {
	s := nonSalaryChars.ReplaceAllString(fmt.Sprint(raw), "")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func main() {
	cfg := config.Load()

	fetcher := scraper.NewFetcher(cfg.UpstreamURL, time.Duration(cfg.FetchTimeoutSeconds)*time.Second)
	manager := cache.NewManager(cfg.CachePath, time.Duration(cfg.CacheTTLSeconds)*time.Second, fetcher.FetchBlocks)
	resolver := deeplink.NewResolver(10 * time.Second)

	rep, err := reporter.NewTelegramReporter(cfg)
	if err != nil {
		log.Printf("⚠️ telegram reporter disabled: %v", err)
	}

	sched := scheduler.New(manager, rep, cfg.RefreshIntervalHours)
	if err := sched.Start(context.Background()); err != nil {
		log.Fatalf("❌ failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	r := gin.Default()

	r.POST("/api/buscar", func(c *gin.Context) {
		var req searchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			//invalid criteria mean "no filter", matching the core contract
			req = searchRequest{}
		}

		criteria := filter.Criteria{
			MinSalary:             parseSalary(req.SalarioMinimo),
			IncludeKeywords:       splitCSV(req.PalavraChave),
			ExcludeKeywords:       splitCSV(req.ExcluirPalavra),
			TargetRegions:         filter.ExpandRegions(req.UFs, req.Regioes),
			TargetEducationLevels: req.Escolaridade,
		}

		records := manager.GetRecords(c.Request.Context(), false)
		results := filter.Apply(records, criteria)

		//fire-and-forget search log, never blocks the response
		go func() {
			_ = rep.SendMessage(fmt.Sprintf("🔎 busca: %d resultados (piso %.2f)", len(results), criteria.MinSalary))
		}()

		c.JSON(http.StatusOK, results)
	})

	r.POST("/api/link-profundo", func(c *gin.Context) {
		var req deepLinkRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" || req.URL == "#" {
			c.JSON(http.StatusOK, gin.H{"url": "#"})
			return
		}

		kind := deeplink.KindEdital
		if req.Tipo == "inscricao" {
			kind = deeplink.KindInscricao
		}

		c.JSON(http.StatusOK, gin.H{"url": resolver.Resolve(req.URL, kind)})
	})

	r.GET("/ping", func(c *gin.Context) {
		fetchedAt, count := manager.Stats()
		c.JSON(http.StatusOK, gin.H{
			"status":          "ok",
			"cache_timestamp": fetchedAt.Unix(),
			"itens_cache":     count,
		})
	})

	r.GET("/robots.txt", func(c *gin.Context) {
		c.String(http.StatusOK, "User-agent: *\nAllow: /\n")
	})

	r.GET("/sitemap.xml", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/xml", []byte(`<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>/</loc><changefreq>daily</changefreq></url>
</urlset>`))
	})

	log.Printf("🚀 server listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ failed to start server: %v", err)
	}
}
