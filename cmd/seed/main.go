package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"net/http"
	"time"

	"zidesign/pkg/config"
	"zidesign/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	var authURL, worksURL string
	flag.StringVar(&authURL, "auth-url", "http://localhost:"+cfg.AuthPort+"/api/v1/auth", "Auth endpoint")
	flag.StringVar(&worksURL, "works-url", "http://localhost:"+cfg.WorksPort+"/api/v1/works", "Works endpoint")
	flag.Parse()

	log := logger.New()
	s := &seeder{
		authURL:  authURL,
		worksURL: worksURL,
		http:     &http.Client{Timeout: 30 * time.Second},
		log:      log,
	}

	if err := s.seed(cfg.AdminEmail); err != nil {
		log.Error("Failed to seed: %v", err)
		panic(err)
	}

	log.Info("Demo data seeded successfully!")
}

type seedUser struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type seeder struct {
	authURL  string
	worksURL string
	http     *http.Client
	log      *logger.Logger
}

var categories = []string{"illustration", "photo", "3d", "ui"}

func (s *seeder) seed(adminEmail string) error {
	testUsers := []struct {
		email string
		name  string
	}{
		{adminEmail, "ZiDesign"},
		{"alice@test.com", "Alice"},
		{"bob@test.com", "Bob"},
		{"charlie@test.com", "Charlie"},
	}

	for i, userData := range testUsers {
		user, err := s.ensureUser(userData.email, userData.name)
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", userData.email, err)
		}

		worksCount := 2 + i%2
		s.log.Info("Creating %d works for %s (%s)", worksCount, user.Name, user.Role)
		for j := 0; j < worksCount; j++ {
			if err := s.createWork(user, j); err != nil {
				s.log.Error("Failed to create work %d for %s: %v", j+1, user.Name, err)
			}
		}
	}
	return nil
}

// ensureUser registers the account, falling back to login when it already exists.
func (s *seeder) ensureUser(email, name string) (*seedUser, error) {
	var out struct {
		User *seedUser `json:"user"`
	}

	status, err := s.post(s.authURL, map[string]interface{}{
		"action": "register",
		"email":  email,
		"name":   name,
	}, &out)
	if err != nil {
		return nil, err
	}
	if status == http.StatusConflict {
		s.log.Info("User %s already exists, logging in", email)
		status, err = s.post(s.authURL, map[string]interface{}{
			"action": "login",
			"email":  email,
		}, &out)
		if err != nil {
			return nil, err
		}
	}
	if status >= http.StatusBadRequest || out.User == nil {
		return nil, fmt.Errorf("auth returned status %d", status)
	}
	return out.User, nil
}

func (s *seeder) createWork(user *seedUser, index int) error {
	imageData, err := demoImage(index)
	if err != nil {
		return err
	}

	status, err := s.post(s.worksURL, map[string]interface{}{
		"title":        fmt.Sprintf("Study #%d by %s", index+1, user.Name),
		"description":  "Generated demo work",
		"category":     categories[index%len(categories)],
		"license":      "cc-by",
		"tags":         []string{"demo", "seed"},
		"author_id":    user.ID,
		"author_role":  user.Role,
		"image_base64": "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(imageData),
	}, nil)
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return fmt.Errorf("works returned status %d", status)
	}
	return nil
}

func (s *seeder) post(url string, payload interface{}, out interface{}) (int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < http.StatusBadRequest {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

// demoImage renders a small gradient so every seeded work has a distinct JPEG.
func demoImage(seed int) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, 256, 256))
	for y := 0; y < 256; y++ {
		for x := 0; x < 256; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: uint8(seed * 60), A: 255})
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
