package cli

import (
	"context"
	"fmt"

	"github.com/dmuwanga/ohns-backoffice/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for phone number and password and exchanges them for a
// session. On success the user lands in the session state and background
// polling starts; a rejection prints the server's message and leaves the
// app logged out.
//
// The password byte slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	phone, err := getSimpleText(a.reader, "Enter phone number (e.g. +256782000000)", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.auth.Login(ctx, phone, string(password))
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	if !res.OK() {
		fmt.Fprintln(a.out, res.Err)
		return nil
	}

	a.session.SetUser(res.User)
	a.startListPolling(ctx)
	fmt.Fprintf(a.out, "Logged in as %s\n", res.User.Name)
	return nil
}

// Logout tears the session down locally first, then revokes it remotely.
// The local teardown always happens, so the app ends up logged out even
// when the server is unreachable.
func (a *App) Logout(ctx context.Context) error {
	a.poller.StopAll()
	a.cache.Reset()
	a.session.SetUser(nil)

	res, err := a.auth.Logout(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Logged out locally:", err.Error())
		return nil
	}
	if !res.OK() {
		fmt.Fprintln(a.out, res.Err)
		return nil
	}

	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Whoami prints the signed-in user.
func (a *App) Whoami(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s (%s) %s\n", u.Name, u.Type, u.PhoneNumber)
	return nil
}
