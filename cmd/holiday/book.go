package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/models"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/orchestrator"
)

var (
	orchestratorURL string
	bookReq         models.HolidayBookingRequest
	bookDemo        bool
	bookKey         string
)

func init() {
	for _, c := range []*cobra.Command{bookCmd, statusCmd} {
		c.Flags().StringVar(&orchestratorURL, "url", "http://localhost:8000", "orchestrator base URL")
	}
	f := bookCmd.Flags()
	f.StringVar(&bookReq.Origin, "origin", "", "departure city")
	f.StringVar(&bookReq.Destination, "destination", "", "holiday destination")
	f.IntVar(&bookReq.Nights, "nights", models.DefaultNights, "length of stay")
	f.IntVar(&bookReq.Passengers, "passengers", models.DefaultPassengers, "number of travellers")
	f.StringVar(&bookReq.DepartureDate, "date", "", "departure date, YYYY-MM-DD (default today)")
	f.StringVar(&bookReq.RoomType, "room", models.DefaultRoomType, "hotel room type")
	f.BoolVar(&bookDemo, "demo", false, "book the Delhi to Paris demo holiday")
	f.StringVar(&bookKey, "idempotency-key", "", "Idempotency-Key header for safe retries")
}

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Book a holiday through a running orchestrator",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			resp orchestrator.HolidayBookingResponse
			err  error
		)
		if bookDemo {
			err = getJSON(cmd.Context(), orchestratorURL+"/book-holiday/demo", &resp)
		} else {
			err = postJSON(cmd.Context(), orchestratorURL+"/book-holiday", bookReq, bookKey, &resp)
		}
		if err != nil {
			return err
		}
		printResponse(cmd.OutOrStdout(), resp)
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which agents the orchestrator can reach",
	RunE: func(cmd *cobra.Command, args []string) error {
		var body struct {
			Agents map[string]orchestrator.AgentStatus `json:"agents"`
		}
		if err := getJSON(cmd.Context(), orchestratorURL+"/agents/status", &body); err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, service := range []string{orchestrator.ServiceFlight, orchestrator.ServiceHotel, orchestrator.ServiceCab} {
			s, ok := body.Agents[service]
			if !ok {
				continue
			}
			line := fmt.Sprintf("%-7s %-8s %s", service, s.Status, s.URL)
			if s.AgentName != "" {
				line += "  " + s.AgentName
			}
			if s.Error != "" {
				line += "  (" + s.Error + ")"
			}
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

func printResponse(w io.Writer, resp orchestrator.HolidayBookingResponse) {
	fmt.Fprintf(w, "Booking %s\n%s\n", resp.BookingID, resp.Summary)
	fmt.Fprintf(w, "%d/%d services booked (%.1f%%) in %dms\n\n",
		resp.SuccessfulBookings, resp.TotalServices, resp.SuccessRate, resp.DurationMs)
	for _, r := range resp.Results {
		fmt.Fprintf(w, "== %s: %s ==\n%s\n\n", strings.ToUpper(r.Service), r.Status, r.Message)
	}
}

var httpClient = &http.Client{Timeout: 90 * time.Second}

func getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	return do(req, out)
}

func postJSON(ctx context.Context, url string, in any, idemKey string, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if idemKey != "" {
		req.Header.Set("Idempotency-Key", idemKey)
	}
	return do(req, out)
}

func do(req *http.Request, out any) error {
	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", req.URL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &e) == nil && e.Error != "" {
			return fmt.Errorf("%s: %s", resp.Status, e.Error)
		}
		return fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	return json.Unmarshal(body, out)
}
