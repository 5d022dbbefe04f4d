package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rustlersclub/club-api/internal/utils"
)

// Checks that every configured phone number (sender and staff alert
// list) normalizes to E.164 before it lands in production config.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	numbers := map[string]string{
		"OPENPHONE_NUMBER": os.Getenv("OPENPHONE_NUMBER"),
	}
	for i, phone := range strings.Split(os.Getenv("STAFF_PHONES"), ",") {
		phone = strings.TrimSpace(phone)
		if phone == "" {
			continue
		}
		numbers[fmt.Sprintf("STAFF_PHONES[%d]", i)] = phone
	}

	failed := 0
	for name, phone := range numbers {
		if phone == "" {
			fmt.Printf("%s: not set\n", name)
			continue
		}
		normalized, err := utils.NormalizePhoneNumber(phone)
		if err != nil {
			log.Printf("%s: failed to normalize %q: %v", name, phone, err)
			failed++
			continue
		}
		if normalized != phone {
			fmt.Printf("%s: %q -> %q (update your config)\n", name, phone, normalized)
		} else {
			fmt.Printf("%s: %q ok\n", name, phone)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
