package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"guesthub/internal/config"
	"guesthub/internal/database"
	"guesthub/internal/domain"
	"guesthub/internal/modules/bookingform"
	"guesthub/internal/modules/catalog"
	"guesthub/internal/modules/session"
	"guesthub/internal/pkg/apiclient"
	"guesthub/internal/repository"
)

type options struct {
	loginEmail    string
	loginPassword string
	logout        bool

	fullName  string
	email     string
	phone     string
	roomType  string
	guests    int
	requests  string
	checkIn   string
	checkOut  string
	quoteOnly bool
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.loginEmail, "login-email", "", "sign in with this account before booking")
	flag.StringVar(&o.loginPassword, "login-password", "", "password for -login-email")
	flag.BoolVar(&o.logout, "logout", false, "forget the stored session and exit")
	flag.StringVar(&o.fullName, "name", "", "guest full name")
	flag.StringVar(&o.email, "email", "", "guest contact email")
	flag.StringVar(&o.phone, "phone", "", "guest phone number")
	flag.StringVar(&o.roomType, "room", "", "room type id (deluxe, executive, presidential)")
	flag.IntVar(&o.guests, "guests", 1, "number of guests")
	flag.StringVar(&o.requests, "requests", "", "special requests")
	flag.StringVar(&o.checkIn, "check-in", "", "check-in date, YYYY-MM-DD")
	flag.StringVar(&o.checkOut, "check-out", "", "check-out date, YYYY-MM-DD")
	flag.BoolVar(&o.quoteOnly, "quote", false, "print the price summary without submitting")
	flag.Parse()
	return o
}

type consoleNotifier struct{}

func (consoleNotifier) Success(m string) { fmt.Println(m) }
func (consoleNotifier) Error(m string)   { fmt.Fprintln(os.Stderr, m) }

func main() {
	if err := run(parseFlags()); err != nil {
		log.Printf("book: %v", err)
		os.Exit(1)
	}
}

func run(o options) error {
	config.LoadDotEnv()
	cfg, err := config.LoadClientConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	storeDB, err := database.Connect(cfg.SessionStoreDSN)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	store := repository.NewLocalStorageRepository(storeDB)
	if err := store.Migrate(); err != nil {
		return fmt.Errorf("migrate session store: %w", err)
	}

	ctx := context.Background()
	provider := session.NewProvider(apiclient.New(cfg.APIBaseURL, cfg.APITimeout), store)
	if err := provider.Hydrate(ctx); err != nil {
		return err
	}

	if o.logout {
		return provider.Logout(ctx)
	}
	if o.loginEmail != "" {
		u, err := provider.Login(ctx, o.loginEmail, o.loginPassword)
		if err != nil {
			return err
		}
		fmt.Printf("Signed in as %s (%s)\n", u.Name, u.Role)
	}

	rooms := catalog.DefaultCatalog()
	form := bookingform.NewController(rooms,
		apiclient.New(cfg.APIBaseURL, cfg.APITimeout, apiclient.WithTokenSource(provider)),
		consoleNotifier{},
	)
	if err := fill(form, o); err != nil {
		return err
	}

	if q := form.Quote(); q.Total > 0 {
		fmt.Printf("%s: %d night(s) x %d = %d\n", q.RoomName, q.Nights, q.PricePerNight, q.Total)
	}
	if o.quoteOnly {
		return nil
	}

	if err := form.Submit(ctx); err != nil {
		var verr *bookingform.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprint(os.Stderr, verr.Fields.String())
		}
		return err
	}
	return nil
}

func fill(form *bookingform.Controller, o options) error {
	fields := []struct{ name, value string }{
		{bookingform.FieldFullName, o.fullName},
		{bookingform.FieldEmail, o.email},
		{bookingform.FieldPhone, o.phone},
		{bookingform.FieldRoomType, o.roomType},
		{bookingform.FieldNumberOfGuests, strconv.Itoa(o.guests)},
		{bookingform.FieldSpecialRequests, o.requests},
	}
	for _, f := range fields {
		if err := form.SetField(f.name, f.value); err != nil {
			return err
		}
	}

	if o.checkIn != "" {
		d, err := time.ParseInLocation(domain.DateLayout, o.checkIn, time.Local)
		if err != nil {
			return fmt.Errorf("invalid -check-in: %w", err)
		}
		if !form.SelectCheckIn(d) {
			return fmt.Errorf("check-in %s is in the past", o.checkIn)
		}
	}
	if o.checkOut != "" {
		d, err := time.ParseInLocation(domain.DateLayout, o.checkOut, time.Local)
		if err != nil {
			return fmt.Errorf("invalid -check-out: %w", err)
		}
		if !form.SelectCheckOut(d) {
			return fmt.Errorf("check-out %s must not be before check-in", o.checkOut)
		}
	}
	return nil
}
