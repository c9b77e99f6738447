/*
Package gymsdk provides the wire types of the gymtrack API and a Go client
for it.

# SDKClient vs Session

  - SDKClient: public endpoints (registration, email verification, password
    reset, health) and login
  - Session: operations that need the bearer session token

	client := gymsdk.NewSDKClient("https://gym.example.com")

	user, err := client.Register(ctx, gymsdk.RegisterRequest{
		Email:    "lifter@example.com",
		Password: "secret",
		Username: "lifter",
	})

	// after following the emailed link
	session, err := client.Login(ctx, "lifter@example.com", "secret")

	workout, err := session.CreateWorkout(ctx, gymsdk.WorkoutRequest{
		Date: gymsdk.Ptr("2024-03-01"),
	})

# Errors

Every non 2xx response is returned as *APIError, which carries the HTTP
status, a stable error code and, for validation failures, the per field
messages:

	var apiErr *gymsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == gymsdk.CodeValidation {
		fmt.Println(apiErr.Fields["email"])
	}

The server writes the same type with APIError.WriteError, so both ends agree
on the format.
*/
package gymsdk
