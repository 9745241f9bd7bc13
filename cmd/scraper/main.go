package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go-linkedin-jobs/internal/browser"
	"go-linkedin-jobs/internal/config"
	"go-linkedin-jobs/internal/dedup"
	"go-linkedin-jobs/internal/scraper"
	"go-linkedin-jobs/internal/scraper/linkedin"
	"go-linkedin-jobs/internal/telegram"
)

func main() {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Keywords: %v", cfg.Keywords)
	if len(cfg.Keywords) == 0 {
		log.Fatal("❌ No keywords configured, nothing to search")
	}

	//init telegram bot (optional)
	var bot *telegram.Bot
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		b, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("❌ Failed to init Telegram Bot: %v", err)
		}
		bot = b
		log.Println("🤖 Telegram Bot initialized.")
	}

	//setup context with timeout = 10 mins
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	log.Println("🚀 Starting LinkedIn job scrape...")

	//init browser manager
	manager, err := browser.NewManager(cfg.Scrape)
	if err != nil {
		log.Fatalf("❌ Failed to init browser: %v", err)
	}
	defer manager.Close()

	engine := linkedin.NewEngine(manager, cfg.Scrape)

	//run one search per keyword/location pair, dedup across searches
	locations := cfg.Locations
	if len(locations) == 0 {
		locations = []string{""}
	}

	seen := dedup.NewSet()
	var allJobs []scraper.JobSummary
	for _, keyword := range cfg.Keywords {
		for _, location := range locations {
			log.Printf("\n▶️ Searching %q in %q", keyword, location)
			result, err := engine.Search(ctx, scraper.SearchRequest{
				Keywords: keyword,
				Location: location,
			})
			if err != nil {
				log.Printf("❌ Invalid search request: %v", err)
				continue
			}
			if !result.Success {
				log.Printf("⚠️ Search failed: %s", result.Message)
				continue
			}
			for _, job := range result.Jobs {
				if seen.Add(job.JobURL) {
					allJobs = append(allJobs, job)
				}
			}
			log.Printf("✅ %d jobs for %q (total unique: %d)", result.TotalResults, keyword, len(allJobs))
		}
	}

	log.Printf("\n📦 Total jobs collected: %d", len(allJobs))

	//start sending jobs to telegram
	if bot != nil && len(allJobs) > 0 {
		for _, job := range allJobs {
			log.Printf("  📤 %s @ %s", job.Title, job.Company)
			if err := bot.SendJob(job); err != nil {
				log.Printf("⚠️ Failed to send job to Telegram: %v", err)
			}
			//1 second delay to avoid 429
			time.Sleep(1 * time.Second)
		}
		statusMsg := fmt.Sprintf("✅ Found %d jobs.", len(allJobs))
		if err := bot.SendStatus(statusMsg); err != nil {
			log.Printf("⚠️ Failed to send status to Telegram: %v", err)
		}
	}

	//save results
	saveJobs(allJobs)

	log.Println("🏁 Execution finished.")
}

func saveJobs(jobs []scraper.JobSummary) {
	if len(jobs) == 0 {
		log.Println("ℹ️ No jobs to save.")
		return
	}

	//create logs directory if not exists
	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Printf("⚠️ Failed to create logs directory: %v", err)
		return
	}

	//gen filename: job-search-YYYY-MM-DD.json
	filename := fmt.Sprintf("job-search-%s.json", time.Now().Format("2006-01-02"))
	filePath := filepath.Join(logDir, filename)

	//marshal
	data, err := json.MarshalIndent(jobs, "", " ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal jobs to JSON: %v", err)
		return
	}

	//write file
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write logs file: %v", err)
		return
	}

	log.Printf("📁 Results saved to %s", filePath)
}
