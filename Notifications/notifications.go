package Notifications

import (
	"context"
	"fmt"
	"log"
	"os"

	"Garage/Models"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Global Firebase client
var firebaseClient *messaging.Client
var ctx = context.Background()

// InitFirebase sets up the FCM client from the service account file
// named in GOOGLE_APPLICATION_CREDENTIALS (default firebase-key.json).
// Call once at startup; all sends before it returns are dropped.
func InitFirebase() error {
	credentials := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentials == "" {
		credentials = "./firebase-key.json"
	}
	opt := option.WithCredentialsFile(credentials)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return fmt.Errorf("error initializing Firebase app: %v", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return fmt.Errorf("error getting Messaging client: %v", err)
	}

	firebaseClient = client
	log.Println("Firebase initialized successfully")
	return nil
}

// NotifyUser pushes a notification to the user's registered device.
// Users without a registered token are skipped silently; notification
// delivery is best effort and never blocks order processing.
func NotifyUser(userID uint, title, body string) error {
	if firebaseClient == nil {
		return fmt.Errorf("firebase client not initialized")
	}

	var token Models.FCMToken
	if err := Models.DB.Where("user_id = ?", userID).First(&token).Error; err != nil {
		return nil
	}

	message := &messaging.Message{
		Token: token.Value,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Android: &messaging.AndroidConfig{
			Notification: &messaging.AndroidNotification{
				Sound: "default",
			},
			Priority: "high",
		},
	}

	response, err := firebaseClient.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("error sending Firebase message: %v", err)
	}

	log.Printf("Notification sent to user %d: %s", userID, response)
	return nil
}

// NotifyAdmins broadcasts to every admin-level user with a token.
func NotifyAdmins(title, body string) error {
	if firebaseClient == nil {
		return fmt.Errorf("firebase client not initialized")
	}

	var admins []Models.User
	if err := Models.DB.Where("permission >= ?", Models.PermissionAdmin).Find(&admins).Error; err != nil {
		return err
	}

	for _, admin := range admins {
		if err := NotifyUser(admin.ID, title, body); err != nil {
			log.Printf("Error notifying admin %d: %v", admin.ID, err)
		}
	}
	return nil
}
