package signup

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/multierr"

	"github.com/rustlersclub/club-api/internal/openphone"
	"github.com/rustlersclub/club-api/internal/utils"
)

// Request is one signup-form submission.
type Request struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	SMSConsent bool   `json:"smsConsent"`
	Source     string `json:"source"`
	EventType  string `json:"eventType,omitempty"`
	EventName  string `json:"eventName,omitempty"`
}

// ValidationError reports missing or malformed signup fields. It is the
// only error Process returns; everything past validation is best-effort.
type ValidationError struct {
	Missing []string
	Reason  string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return "missing required fields: " + strings.Join(e.Missing, ", ")
	}
	return e.Reason
}

// ContactMessenger is the slice of the contacts/messaging API the
// notifier uses.
type ContactMessenger interface {
	SearchContact(ctx context.Context, phone string) (*openphone.Contact, error)
	CreateContact(ctx context.Context, params openphone.CreateContactParams) (*openphone.Contact, error)
	AddNote(ctx context.Context, contactID, content string) error
	SendMessage(ctx context.Context, to, body string) error
}

// Outcome records how far each best-effort step got for one signup. The
// caller-facing success decision never reads any of the error fields.
type Outcome struct {
	ContactID  string
	Created    bool
	ContactErr error
	NoteErr    error
	WelcomeErr error
	StaffErrs  map[string]error
}

// Err combines every step failure into a single error for logging.
func (o *Outcome) Err() error {
	errs := []error{o.ContactErr, o.NoteErr, o.WelcomeErr}
	for _, err := range o.StaffErrs {
		errs = append(errs, err)
	}
	return multierr.Combine(errs...)
}

// Notifier runs the signup workflow: find-or-create a contact, attach a
// note, welcome the signer, alert the staff.
type Notifier struct {
	client      ContactMessenger
	staffPhones []string
	log         zerolog.Logger
	now         func() time.Time
}

func NewNotifier(client ContactMessenger, staffPhones []string, log zerolog.Logger) *Notifier {
	return &Notifier{
		client:      client,
		staffPhones: staffPhones,
		log:         log,
		now:         time.Now,
	}
}

// Process validates the request and then runs the notification steps.
// Only validation can fail the call; each downstream step is attempted
// once, logged on failure, and abandoned. The signup must never bounce
// because the messaging integration is degraded.
func (n *Notifier) Process(ctx context.Context, req Request) (*Outcome, error) {
	phone, err := validate(&req)
	if err != nil {
		return nil, err
	}

	out := &Outcome{StaffErrs: make(map[string]error)}

	contact := n.findOrCreateContact(ctx, phone, req, out)
	if contact != nil {
		out.ContactID = contact.ID
		if err := n.client.AddNote(ctx, contact.ID, n.buildNote(req, phone)); err != nil {
			out.NoteErr = err
			n.log.Error().Err(err).Str("contact_id", contact.ID).Msg("failed to add signup note")
		}
	}

	if req.SMSConsent {
		if err := n.client.SendMessage(ctx, phone, buildWelcome(req)); err != nil {
			out.WelcomeErr = err
			n.log.Error().Err(err).Str("to", phone).Msg("failed to send welcome SMS")
		}
	}

	alert := buildStaffAlert(req, phone)
	for _, staff := range n.staffPhones {
		if err := n.client.SendMessage(ctx, staff, alert); err != nil {
			out.StaffErrs[staff] = err
			n.log.Error().Err(err).Str("to", staff).Msg("failed to send staff alert")
		}
	}

	return out, nil
}

// validate checks the required fields and returns the normalized phone
// number. It performs no outbound calls.
func validate(req *Request) (string, error) {
	var missing []string
	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(req.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return "", &ValidationError{Missing: missing}
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		return "", &ValidationError{Reason: "invalid email address"}
	}
	phone, err := utils.NormalizePhoneNumber(req.Phone)
	if err != nil {
		return "", &ValidationError{Reason: "invalid phone number"}
	}
	return phone, nil
}

// findOrCreateContact searches by phone and reuses any match as-is; no
// field-level merge happens on reuse. A failure at this step is logged
// and the rest of the workflow runs without a contact reference.
func (n *Notifier) findOrCreateContact(ctx context.Context, phone string, req Request, out *Outcome) *openphone.Contact {
	contact, err := n.client.SearchContact(ctx, phone)
	if err != nil {
		out.ContactErr = err
		n.log.Error().Err(err).Str("phone", phone).Msg("contact search failed")
		return nil
	}
	if contact != nil {
		n.log.Info().Str("contact_id", contact.ID).Msg("reusing existing contact")
		return contact
	}

	first, last := splitName(req.Name)
	contact, err = n.client.CreateContact(ctx, openphone.CreateContactParams{
		FirstName:    first,
		LastName:     last,
		Emails:       []openphone.ContactEmail{{Email: req.Email}},
		PhoneNumbers: []openphone.ContactPhone{{PhoneNumber: phone}},
		CustomFields: []openphone.CustomField{
			{Key: "source", Value: sourceOrDefault(req.Source)},
			{Key: "signup_at", Value: n.now().UTC().Format(time.RFC3339)},
			{Key: "offer_redeemed", Value: "false"},
		},
	})
	if err != nil {
		out.ContactErr = err
		n.log.Error().Err(err).Str("phone", phone).Msg("contact create failed")
		return nil
	}
	out.Created = true
	n.log.Info().Str("contact_id", contact.ID).Msg("created new contact")
	return contact
}

func (n *Notifier) buildNote(req Request, phone string) string {
	var b strings.Builder
	b.WriteString("🎯 New Rustlers Club Signup!\n\n")
	fmt.Fprintf(&b, "Name: %s\n", req.Name)
	fmt.Fprintf(&b, "Phone: %s\n", phone)
	fmt.Fprintf(&b, "Email: %s\n", req.Email)
	fmt.Fprintf(&b, "SMS Consent: %s\n", yesNo(req.SMSConsent))
	fmt.Fprintf(&b, "Source: %s\n", sourceOrDefault(req.Source))
	fmt.Fprintf(&b, "Signed up: %s\n", n.now().Format(time.RFC1123))
	if req.EventType != "" && req.EventName != "" {
		fmt.Fprintf(&b, "\n🎮 Interested in: %s\n", req.EventName)
		fmt.Fprintf(&b, "Type: %s\n", req.EventType)
	}
	return b.String()
}

func buildWelcome(req Request) string {
	first, _ := splitName(req.Name)

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s! Welcome to Rustlers Club 🎯\n\n", first)
	if req.EventName != "" {
		fmt.Fprintf(&b, "We see you're interested in %s. Our team will text you details shortly!\n\n", req.EventName)
	}
	b.WriteString("Show this text for $5 off your first visit!\n\n")
	b.WriteString("📍 6436 NW Loop 410\n")
	b.WriteString("📞 (210) 957-1550\n\n")
	b.WriteString("Reply STOP to opt out.")
	return b.String()
}

func buildStaffAlert(req Request, phone string) string {
	return fmt.Sprintf("New signup: %s, %s, %s", req.Name, phone, req.Email)
}

// splitName breaks a full name into first name and the rest.
func splitName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func sourceOrDefault(source string) string {
	if source == "" {
		return "website"
	}
	return source
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
