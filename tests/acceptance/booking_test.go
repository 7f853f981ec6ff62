package acceptance

import (
	"fmt"
	"net/http"

	"github.com/secureride/booking-service/internal/domain"
	"github.com/secureride/booking-service/internal/dto"
)

func (s *Suite) createBooking(client *http.Client, req dto.CreateBookingRequest) *domain.Booking {
	resp := s.postJSON(client, "/api/v1/bookings", req)
	s.Require().Equal(http.StatusCreated, resp.StatusCode, "Booking creation should succeed")

	var booking domain.Booking
	s.decode(resp, &booking)
	return &booking
}

func (s *Suite) TestCreateBooking_AppliesDefaults() {
	client := s.activeClient("Jordan Reeve", "booker@example.com", "Password123")

	booking := s.createBooking(client, dto.CreateBookingRequest{
		PickupLocation: "Heathrow Terminal 5",
		Destination:    "Canary Wharf",
		EstimatedPrice: 180.50,
	})

	s.NotEmpty(booking.ID)
	s.Equal("private-hire", booking.ServiceType)
	s.Equal(domain.SecurityLevelStandard, booking.SecurityLevel)
	s.Equal(domain.BookingStatusPending, booking.Status)
	s.Equal("gbp", booking.Currency)
	s.False(booking.PickupTime.IsZero())
}

func (s *Suite) TestCreateBooking_Unauthenticated() {
	resp := s.postJSON(s.newClient(), "/api/v1/bookings", dto.CreateBookingRequest{
		PickupLocation: "Heathrow Terminal 5",
		Destination:    "Canary Wharf",
		EstimatedPrice: 180.50,
	})
	resp.Body.Close()

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *Suite) TestCreateBooking_MissingFields() {
	client := s.activeClient("Jordan Reeve", "invalid@example.com", "Password123")

	resp := s.postJSON(client, "/api/v1/bookings", dto.CreateBookingRequest{
		PickupLocation: "Heathrow Terminal 5",
	})
	resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *Suite) TestGetBooking_OwnershipHidden() {
	owner := s.activeClient("Jordan Reeve", "owner@example.com", "Password123")
	booking := s.createBooking(owner, dto.CreateBookingRequest{
		PickupLocation: "Heathrow Terminal 5",
		Destination:    "Canary Wharf",
		EstimatedPrice: 180.50,
	})

	resp := s.getPath(owner, "/api/v1/bookings/"+booking.ID)
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	// Another user sees 404, not 403; existence is not revealed.
	intruder := s.activeClient("Robin Vale", "intruder@example.com", "Password123")
	resp = s.getPath(intruder, "/api/v1/bookings/"+booking.ID)
	resp.Body.Close()
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *Suite) TestListBookings_Pagination() {
	client := s.activeClient("Jordan Reeve", "lister@example.com", "Password123")

	for i := 0; i < 5; i++ {
		s.createBooking(client, dto.CreateBookingRequest{
			PickupLocation: fmt.Sprintf("Pickup %d", i),
			Destination:    "Canary Wharf",
			EstimatedPrice: 100,
		})
	}

	resp := s.getPath(client, "/api/v1/bookings?page=1&limit=2")
	s.Equal(http.StatusOK, resp.StatusCode)

	var list dto.BookingListResponse
	s.decode(resp, &list)

	s.Equal(5, list.Total)
	s.Equal(3, list.Pages)
	s.Len(list.Bookings, 2)
}

func (s *Suite) TestListBookings_ScopedToOwner() {
	alice := s.activeClient("Alice Wren", "alice@example.com", "Password123")
	bob := s.activeClient("Bob Marsh", "bob@example.com", "Password123")

	s.createBooking(alice, dto.CreateBookingRequest{
		PickupLocation: "Heathrow Terminal 5",
		Destination:    "Canary Wharf",
		EstimatedPrice: 100,
	})

	resp := s.getPath(bob, "/api/v1/bookings")
	s.Equal(http.StatusOK, resp.StatusCode)

	var list dto.BookingListResponse
	s.decode(resp, &list)
	s.Equal(0, list.Total, "A user must not see another user's bookings")
}

func (s *Suite) TestPaymentIntent_Flow() {
	client := s.activeClient("Jordan Reeve", "payer@example.com", "Password123")
	booking := s.createBooking(client, dto.CreateBookingRequest{
		PickupLocation: "Heathrow Terminal 5",
		Destination:    "Canary Wharf",
		EstimatedPrice: 180.50,
	})

	resp := s.postJSON(client, "/api/v1/payments/create-intent", dto.CreateIntentRequest{
		BookingID: booking.ID,
	})
	s.Equal(http.StatusCreated, resp.StatusCode)

	var intent dto.PaymentIntentResponse
	s.decode(resp, &intent)

	s.Equal(booking.ID, intent.BookingID)
	s.Equal(int64(18050), intent.Amount)
	s.Equal("gbp", intent.Currency)
	s.Equal(domain.BookingStatusProcessing, intent.Status)
	s.NotEmpty(intent.ClientSecret)

	// The booking now carries the intent reference and processing status.
	resp = s.getPath(client, "/api/v1/bookings/"+booking.ID)
	var updated domain.Booking
	s.decode(resp, &updated)
	s.Equal(domain.BookingStatusProcessing, updated.Status)
	s.Require().NotNil(updated.PaymentIntentID)

	_, ok := s.Gateway.Intent(*updated.PaymentIntentID)
	s.True(ok, "The gateway should know the created intent")

	// Re-requesting while processing is allowed.
	resp = s.postJSON(client, "/api/v1/payments/create-intent", dto.CreateIntentRequest{
		BookingID: booking.ID,
	})
	resp.Body.Close()
	s.Equal(http.StatusCreated, resp.StatusCode)
}

func (s *Suite) TestPaymentIntent_ForeignBooking() {
	owner := s.activeClient("Jordan Reeve", "payowner@example.com", "Password123")
	booking := s.createBooking(owner, dto.CreateBookingRequest{
		PickupLocation: "Heathrow Terminal 5",
		Destination:    "Canary Wharf",
		EstimatedPrice: 100,
	})

	intruder := s.activeClient("Robin Vale", "payintruder@example.com", "Password123")
	resp := s.postJSON(intruder, "/api/v1/payments/create-intent", dto.CreateIntentRequest{
		BookingID: booking.ID,
	})
	resp.Body.Close()

	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *Suite) TestStaffBookings_RoleGate() {
	user := s.activeClient("Jordan Reeve", "plain@example.com", "Password123")
	s.createBooking(user, dto.CreateBookingRequest{
		PickupLocation: "Heathrow Terminal 5",
		Destination:    "Canary Wharf",
		EstimatedPrice: 100,
	})

	resp := s.getPath(user, "/api/v1/staff/bookings")
	resp.Body.Close()
	s.Equal(http.StatusForbidden, resp.StatusCode, "A plain user must not reach staff routes")

	// Promote and re-login so the access token carries the staff role.
	s.registerAndVerify("Sam Ayala", "staffer@example.com", "Password123")
	s.setRole("staffer@example.com", "staff")
	staff := s.newClient()
	s.login(staff, "staffer@example.com", "Password123")

	resp = s.getPath(staff, "/api/v1/staff/bookings")
	s.Equal(http.StatusOK, resp.StatusCode)

	var list dto.BookingListResponse
	s.decode(resp, &list)
	s.Equal(1, list.Total, "Staff listing should span all users")
}

func (s *Suite) TestAuditLogs_RoleGate() {
	s.registerAndVerify("Sam Ayala", "auditstaff@example.com", "Password123")
	s.setRole("auditstaff@example.com", "staff")
	staff := s.newClient()
	s.login(staff, "auditstaff@example.com", "Password123")

	resp := s.getPath(staff, "/api/v1/admin/audit-logs")
	resp.Body.Close()
	s.Equal(http.StatusForbidden, resp.StatusCode, "Staff must not reach admin routes")

	s.registerAndVerify("Ade Okafor", "admin@example.com", "Password123")
	s.setRole("admin@example.com", "admin")
	admin := s.newClient()
	s.login(admin, "admin@example.com", "Password123")

	resp = s.getPath(admin, "/api/v1/admin/audit-logs")
	s.Equal(http.StatusOK, resp.StatusCode)

	var logs dto.AuditLogListResponse
	s.decode(resp, &logs)
	s.NotZero(logs.Total, "Registrations and logins should have produced audit entries")
}
