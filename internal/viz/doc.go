// Package viz is the terminal front end of the pages.
//
// Both pages are Bubble Tea programs:
//
//   - the not-found page shows the morphing title; losing terminal focus
//     pauses it and regaining focus resumes it
//   - the front page shows the typed tagline, the theme and language state
//     and the privacy policy popup
//
// Animations never talk to the program directly. They render into a
// [Surface], and the models copy the latest frame from it on their own
// frame tick, so a slow terminal can never block an animation timer.
//
// # Key Bindings
//
//	t   - Toggle light/dark theme
//	l   - Toggle English/Russian
//	p   - Open the privacy policy
//	esc - Close the policy
//	q   - Quit
package viz
