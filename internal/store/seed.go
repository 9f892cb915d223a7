package store

import (
	"fmt"

	"github.com/desertthunder/farewell/internal/models"
)

// SamplePersons is the demo fixture every fresh deployment starts with. The
// admin dashboard and public pages are hard to evaluate against an empty
// collection, so three complete farewell pages ship out of the box.
var SamplePersons = []models.PersonInput{
	{
		Name:        "Sarah Johnson",
		Title:       "Marketing Manager",
		Message:     "Dear Sarah,\n\nYour creativity, passion, and dedication have been an inspiration to all of us. The marketing department won't be the same without your brilliant ideas and warm personality. Your contributions have helped shape our company's image and success.\n\nAs you embark on this new chapter of your journey, we wish you all the best. May your future be filled with exciting opportunities, continued growth, and happiness.\n\nYou'll always be part of our team's story. Don't forget to stay in touch!\n\nWith gratitude,\nThe Entire Team",
		PhotoURL:    "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400",
		MusicURL:    "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-1.mp3",
		MusicTitle:  "Time of Your Life",
		MusicArtist: "Green Day",
	},
	{
		Name:        "David Chen",
		Title:       "Lead Developer",
		Message:     "Dear David,\n\nYour technical expertise and problem-solving skills have been invaluable to our team. You've helped us overcome countless challenges and your mentorship has elevated everyone around you.\n\nWe'll miss your coding wizardry and thoughtful approach to every project. Your new team is incredibly lucky to have you joining them.\n\nBest wishes on your new adventure!\n\nSincerely,\nYour Development Team",
		PhotoURL:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400",
		MusicURL:    "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-2.mp3",
		MusicTitle:  "Memories",
		MusicArtist: "Maroon 5",
	},
	{
		Name:        "Maria Rodriguez",
		Title:       "UX Designer",
		Message:     "Dear Maria,\n\nYour eye for design and understanding of user needs has transformed our products. Your creativity and attention to detail have set a new standard for our design team.\n\nWe'll miss your innovative ideas and your ability to advocate for the user in every decision. Your portfolio of work here will continue to inspire us.\n\nWishing you continued success in your next role!\n\nWarmly,\nThe Product Team",
		PhotoURL:    "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=400",
		MusicURL:    "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-3.mp3",
		MusicTitle:  "See You Again",
		MusicArtist: "Wiz Khalifa",
	},
}

// Seed loads the demo fixture into an empty store: one admin credential
// followed by [SamplePersons]. On a fresh store the admin gets user id 1 and
// the persons get ids 1 through 3, leaving 4 as the next person id.
//
// Seeding a non-empty store is skipped so restarts against a persistent
// backend do not duplicate the fixture.
func Seed(s Storage, adminUsername, adminPassword string) error {
	if _, ok, err := s.GetUserByUsername(adminUsername); err != nil {
		return fmt.Errorf("failed to check admin user: %w", err)
	} else if !ok {
		if _, err := s.CreateUser(adminUsername, adminPassword); err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}
	}

	persons, err := s.GetAllPersons()
	if err != nil {
		return fmt.Errorf("failed to check persons: %w", err)
	}
	if len(persons) > 0 {
		return nil
	}

	for _, input := range SamplePersons {
		if _, err := s.CreatePerson(input); err != nil {
			return fmt.Errorf("failed to seed person %q: %w", input.Name, err)
		}
	}
	return nil
}
