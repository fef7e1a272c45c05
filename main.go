package main

import (
	"context"
	"html/template"
	"log"
	"net/http"
	"os"

	"github.com/sadakpramodh/tom-location/clients"
	"github.com/sadakpramodh/tom-location/handlers"
	"github.com/sadakpramodh/tom-location/locate"
	"github.com/sadakpramodh/tom-location/storage"
)

func main() {
	icons := newIconRegistry()
	profiles := loadProfiles(icons)
	if len(profiles) == 0 {
		log.Fatal("❌ No profiles configured! Set PROFILE_1_NAME and PROFILE_1_EMAIL.")
	}

	var dir storage.Directory
	if os.Getenv("DEMO_MODE") == "true" {
		log.Printf("⚠️  DEMO_MODE enabled - serving seeded in-memory data")
		dir = seedDemoDirectory(profiles)
	} else {
		region := os.Getenv("AWS_REGION")
		if region == "" {
			region = "us-east-1"
		}
		client, err := storage.DynamoClient(context.Background(), region)
		if err != nil {
			log.Fatalf("❌ Failed to initialize DynamoDB client: %v", err)
		}
		dir = storage.NewDynamoDirectory(
			client,
			envOr("USERS_TABLE", "users"),
			envOr("DEVICES_TABLE", "devices"),
			envOr("LOCATIONS_TABLE", "locations"),
		)
	}

	svc := locate.NewService(dir)
	tiles := clients.NewTileClient(os.Getenv("TILE_BASE_URL"))

	http.HandleFunc("/", serveDashboard)
	http.HandleFunc("/api/health", handlers.HandleHealth)
	http.HandleFunc("/api/locations", handlers.HandleLocations(svc, profiles))
	http.HandleFunc("/api/map.png", handlers.HandleMapPNG(svc, profiles, tiles))
	http.HandleFunc("/icons/", icons.serveFile)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("✅ Family location dashboard starting...")
	log.Printf("🌍 Server running on http://:%s", port)
	log.Fatal(http.ListenAndServe(":"+port, nil))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func serveDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	tmpl := template.Must(template.New("index").Parse(dashboardHTML))
	tmpl.Execute(w, nil)
}
