package cli

import (
	"context"
	"fmt"

	"github.com/dmuwanga/ohns-backoffice/internal/client/services"
	"github.com/dmuwanga/ohns-backoffice/internal/common"
)

// Employees lists the staff accounts.
func (a *App) Employees(ctx context.Context) error {
	list, err := a.employees.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	for _, e := range list {
		fmt.Fprintf(a.out, "%s  %s  %s\n", e.ID, e.Name, e.PhoneNumber)
	}
	fmt.Fprintf(a.out, "%d employee(s)\n", len(list))
	return nil
}

// AddEmployee prompts for the new-account form and registers it. The photo
// travels with the fields in one multipart request.
func (a *App) AddEmployee(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Full name", a.out)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Phone number (e.g. +256782000000)", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	photoPath, err := getSimpleText(a.reader, "Photo file path", a.out)
	if err != nil {
		return err
	}
	photo, err := loadImageFile(photoPath)
	if err != nil {
		fmt.Fprintln(a.out, "Cannot read photo:", err.Error())
		return err
	}

	created, err := a.employees.Create(ctx, services.CreateEmployeeInput{
		Name:        name,
		PhoneNumber: phone,
		Password:    string(password),
		Photo:       photo,
	})
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Created employee %s\n", created.Name)
	return nil
}
