package dto

import (
	"testing"
	"time"
)

func TestCreateShowtimeRequest_Validate(t *testing.T) {
	start := time.Date(2025, 3, 21, 19, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     CreateShowtimeRequest
		want    bool
		wantMsg string
	}{
		{
			name: "valid request",
			req: CreateShowtimeRequest{
				MovieID:   1,
				Theater:   "Theater 1",
				StartTime: start,
				EndTime:   start.Add(3 * time.Hour),
				Price:     20.2,
			},
			want:    true,
			wantMsg: "",
		},
		{
			name: "missing theater",
			req: CreateShowtimeRequest{
				MovieID:   1,
				StartTime: start,
				EndTime:   start.Add(3 * time.Hour),
				Price:     20.2,
			},
			want:    false,
			wantMsg: "Theater is required",
		},
		{
			name: "missing start time",
			req: CreateShowtimeRequest{
				MovieID: 1,
				Theater: "Theater 1",
				EndTime: start.Add(3 * time.Hour),
				Price:   20.2,
			},
			want:    false,
			wantMsg: "Start time is required",
		},
		{
			name: "missing end time",
			req: CreateShowtimeRequest{
				MovieID:   1,
				Theater:   "Theater 1",
				StartTime: start,
				Price:     20.2,
			},
			want:    false,
			wantMsg: "End time is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := tt.req.Validate()
			if got != tt.want {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}
			if msg != tt.wantMsg {
				t.Errorf("Validate() msg = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestBookTicketRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     BookTicketRequest
		want    bool
		wantMsg string
	}{
		{
			name: "valid request",
			req: BookTicketRequest{
				ShowtimeID: 1,
				SeatNumber: 15,
				UserID:     "84438967-f68f-4fa0-b620-0f08217e76af",
			},
			want:    true,
			wantMsg: "",
		},
		{
			name: "missing showtime id",
			req: BookTicketRequest{
				SeatNumber: 15,
				UserID:     "84438967-f68f-4fa0-b620-0f08217e76af",
			},
			want:    false,
			wantMsg: "Showtime ID is required",
		},
		{
			name: "seat number below one",
			req: BookTicketRequest{
				ShowtimeID: 1,
				SeatNumber: 0,
				UserID:     "84438967-f68f-4fa0-b620-0f08217e76af",
			},
			want:    false,
			wantMsg: "Seat number must be at least 1",
		},
		{
			name: "missing user id",
			req: BookTicketRequest{
				ShowtimeID: 1,
				SeatNumber: 15,
			},
			want:    false,
			wantMsg: "User ID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := tt.req.Validate()
			if got != tt.want {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}
			if msg != tt.wantMsg {
				t.Errorf("Validate() msg = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}
