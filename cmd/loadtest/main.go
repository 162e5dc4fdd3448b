package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// transferPayload mirrors the POST /v1/transfers body
type transferPayload struct {
	Counterparty string `json:"counterparty"`
	Amount       string `json:"amount"`
	Note         string `json:"note,omitempty"`
}

type accountPayload struct {
	ID      string `json:"id"`
	Balance string `json:"balance"`
}

// result contains metrics for a single request
type result struct {
	StatusCode   int
	ResponseTime time.Duration
	Err          error
}

// stats contains aggregated statistics
type stats struct {
	mu            sync.Mutex
	total         int
	statusCounts  map[int]int
	errorCounts   map[string]int
	responseTimes []time.Duration
	elapsed       time.Duration
}

func (s *stats) record(r result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.Err != nil {
		s.errorCounts[r.Err.Error()]++
		return
	}
	s.statusCounts[r.StatusCode]++
	s.responseTimes = append(s.responseTimes, r.ResponseTime)
}

type client struct {
	baseURL string
	http    *http.Client
}

func (c *client) do(method, path, email string, body any, idempotencyKey string, out any) (int, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return 0, err
		}
	}

	req, err := http.NewRequest(method, c.baseURL+path, &buf)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Auth-Email", email)
	req.Header.Set("X-Auth-Subject", "loadtest:"+email)
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

// totalBalance provisions (or reads) every account and sums the balances
func (c *client) totalBalance(emails []string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, email := range emails {
		var account accountPayload
		status, err := c.do(http.MethodPost, "/v1/accounts/me", email, nil, "", &account)
		if err != nil {
			return total, fmt.Errorf("provision %s: %w", email, err)
		}
		if status != http.StatusOK {
			return total, fmt.Errorf("provision %s: HTTP %d", email, status)
		}
		balance, err := decimal.NewFromString(account.Balance)
		if err != nil {
			return total, fmt.Errorf("balance of %s: %w", email, err)
		}
		total = total.Add(balance)
	}
	return total, nil
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of transfers to send")
	emailsFlag := flag.String("u", "alice@example.com,bob@example.com,carol@example.com", "Comma-separated account emails to move funds between")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds")
	replayEvery := flag.Int("replay", 10, "Resend every n-th transfer with the same idempotency key (0 disables)")
	flag.Parse()

	var emails []string
	for _, e := range strings.Split(*emailsFlag, ",") {
		if e = strings.TrimSpace(e); e != "" {
			emails = append(emails, e)
		}
	}
	if len(emails) < 2 {
		fmt.Println("At least two accounts are needed")
		os.Exit(2)
	}

	c := &client{baseURL: strings.TrimRight(*baseURL, "/"), http: &http.Client{Timeout: 10 * time.Second}}

	before, err := c.totalBalance(emails)
	if err != nil {
		fmt.Println("Setup failed:", err)
		os.Exit(1)
	}

	fmt.Printf("Load testing transfers across %d accounts\n", len(emails))
	fmt.Printf("Concurrency: %d, transfers: %d, delay: %d ms\n", *concurrency, *totalRequests, *delayMs)

	s := &stats{
		total:        *totalRequests,
		statusCounts: make(map[int]int),
		errorCounts:  make(map[string]int),
	}
	amounts := []string{"0.01", "1.00", "5.25", "20.00", "75.50"}

	jobs := make(chan int, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	start := time.Now()
	var wg sync.WaitGroup
	for w := 0; w < *concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				if *delayMs > 0 {
					time.Sleep(time.Duration(*delayMs) * time.Millisecond)
				}

				from := rand.Intn(len(emails))
				to := (from + 1 + rand.Intn(len(emails)-1)) % len(emails)
				payload := transferPayload{
					Counterparty: emails[to],
					Amount:       amounts[rand.Intn(len(amounts))],
					Note:         fmt.Sprintf("load test %d", job),
				}
				key := uuid.NewString()

				sends := 1
				if *replayEvery > 0 && job%*replayEvery == 0 {
					sends = 2
				}
				for i := 0; i < sends; i++ {
					t0 := time.Now()
					status, err := c.do(http.MethodPost, "/v1/transfers", emails[from], payload, key, nil)
					s.record(result{StatusCode: status, ResponseTime: time.Since(t0), Err: err})
				}
			}
		}()
	}
	wg.Wait()
	s.elapsed = time.Since(start)

	after, err := c.totalBalance(emails)
	if err != nil {
		fmt.Println("Final read failed:", err)
		os.Exit(1)
	}

	printResults(s)

	fmt.Println("\n----------------- CONSERVATION -----------------")
	fmt.Printf("Total before: %s, total after: %s\n", before.StringFixed(2), after.StringFixed(2))
	if !before.Equal(after) {
		fmt.Println("FAILED: transfers between registered accounts changed the total balance")
		os.Exit(1)
	}
	fmt.Println("OK: total balance conserved")
}

func printResults(s *stats) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sort.Slice(s.responseTimes, func(i, j int) bool { return s.responseTimes[i] < s.responseTimes[j] })
	percentile := func(p int) time.Duration {
		if len(s.responseTimes) == 0 {
			return 0
		}
		return s.responseTimes[len(s.responseTimes)*p/100]
	}

	var sum time.Duration
	for _, d := range s.responseTimes {
		sum += d
	}
	var avg time.Duration
	if n := len(s.responseTimes); n > 0 {
		avg = sum / time.Duration(n)
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Transfers:       %d\n", s.total)
	fmt.Printf("Total Test Time: %.2f seconds\n", s.elapsed.Seconds())
	fmt.Printf("Throughput:      %.2f requests/s\n", float64(len(s.responseTimes))/s.elapsed.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average: %v\n", avg)
	fmt.Printf("P50:     %v\n", percentile(50))
	fmt.Printf("P90:     %v\n", percentile(90))
	fmt.Printf("P99:     %v\n", percentile(99))

	fmt.Println("\n----------------- STATUS CODES -----------------")
	codes := make([]int, 0, len(s.statusCounts))
	for code := range s.statusCounts {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	for _, code := range codes {
		fmt.Printf("%d %-22s: %d\n", code, http.StatusText(code), s.statusCounts[code])
	}

	if len(s.errorCounts) > 0 {
		fmt.Println("\n----------------- TRANSPORT ERRORS -----------------")
		for msg, count := range s.errorCounts {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
}
