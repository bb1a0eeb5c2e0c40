// Package content holds the static tables shown on the board.
package content

// Playlist is a curated music playlist. Embed is an opaque player URL and is
// passed through untouched.
type Playlist struct {
	Name  string
	Embed string
}

// Snippet is a short, copyable code example.
type Snippet struct {
	Language string
	Code     string
}

var jokes = []string{
	"Why do programmers prefer dark mode? Because light attracts bugs!",
	"A SQL query walks into a bar, walks up to two tables and asks, 'Can I join you?'",
	"Why was the JavaScript developer sad? Because he didn't Node how to Express himself.",
	"How many programmers does it take to change a light bulb? None, that's a hardware problem.",
	"Why do Java developers wear glasses? Because they don't C#.",
	"!false - It's funny because it's true.",
	"A programmer puts two glasses on his bedside table before going to sleep. One full of water in case he gets thirsty and one empty in case he doesn't.",
	"There are 10 types of people in this world: those who understand binary and those who don't.",
	"Why did the developer go broke? Because he used up all his cache.",
	"What's the object-oriented way to become wealthy? Inheritance.",
	"Why did the functions stop calling each other? They had too many arguments.",
	"Why was the JavaScript developer sad? Because he didn't know how to null his feelings.",
	"A programmer's wife tells him: 'Go to the store and buy a loaf of bread. If they have eggs, buy a dozen.' The programmer returns with 12 loaves of bread.",
	"Why do programmers always mix up Halloween and Christmas? Because Oct 31 == Dec 25.",
	"Why do programmers hate nature? It has too many bugs.",
	"What's a programmer's favorite hangout place? Foo Bar.",
	"What did the Java code say to the C code? You've got no class.",
	"Why don't programmers like to go outside? The sun causes too many reflections.",
	"What do you call a programmer from Finland? Nerdic.",
	"Why was the developer unhappy at their job? They wanted arrays.",
}

var playlists = []Playlist{
	{Name: "Deep Focus", Embed: "https://open.spotify.com/embed/playlist/37i9dQZF1DWZeKCadgRdKQ?utm_source=generator"},
	{Name: "Ambient Chill", Embed: "https://open.spotify.com/embed/playlist/37i9dQZF1DX3Ogo9pFvBkY?utm_source=generator"},
	{Name: "Peaceful Piano", Embed: "https://open.spotify.com/embed/playlist/37i9dQZF1DX4sWSpwq3LiO?utm_source=generator"},
	{Name: "Atmospheric Calm", Embed: "https://open.spotify.com/embed/playlist/37i9dQZF1DWUvHZA1zLcjW?utm_source=generator"},
	{Name: "Minimal Piano", Embed: "https://open.spotify.com/embed/playlist/37i9dQZF1DX0jgyAiPl8Af?utm_source=generator"},
}

var snippets = []Snippet{
	{
		Language: "JavaScript",
		Code: `// Debounce function
function debounce(func, wait) {
  let timeout;
  return function executedFunction(...args) {
    const later = () => {
      clearTimeout(timeout);
      func(...args);
    };
    clearTimeout(timeout);
    timeout = setTimeout(later, wait);
  };
}`,
	},
	{
		Language: "Python",
		Code: `# Quick sort implementation
def quicksort(arr):
    if len(arr) <= 1:
        return arr
    pivot = arr[len(arr) // 2]
    left = [x for x in arr if x < pivot]
    middle = [x for x in arr if x == pivot]
    right = [x for x in arr if x > pivot]
    return quicksort(left) + middle + quicksort(right)`,
	},
	{
		Language: "React",
		Code: `// Custom React Hook for localStorage
import { useState, useEffect } from 'react';

function useLocalStorage(key, initialValue) {
  const [storedValue, setStoredValue] = useState(() => {
    try {
      const item = window.localStorage.getItem(key);
      return item ? JSON.parse(item) : initialValue;
    } catch (error) {
      return initialValue;
    }
  });

  useEffect(() => {
    window.localStorage.setItem(key, JSON.stringify(storedValue));
  }, [key, storedValue]);

  return [storedValue, setStoredValue];
}`,
	},
	{
		Language: "CSS",
		Code: `/* Modern CSS Reset */
*, *::before, *::after {
  box-sizing: border-box;
}

body {
  min-height: 100vh;
  text-rendering: optimizeSpeed;
  line-height: 1.5;
}

img, picture {
  max-width: 100%;
  display: block;
}`,
	},
	{
		Language: "Go",
		Code: `// Fan out work and collect the first error
g, ctx := errgroup.WithContext(ctx)
for _, url := range urls {
	g.Go(func() error {
		return fetch(ctx, url)
	})
}
if err := g.Wait(); err != nil {
	return err
}`,
	},
	{
		Language: "Shell",
		Code: `# Find the ten largest files under the current directory
du -ah . | sort -rh | head -n 10`,
	},
}

// Jokes returns the joke table.
func Jokes() []string {
	out := make([]string, len(jokes))
	copy(out, jokes)
	return out
}

// Playlists returns the playlist table.
func Playlists() []Playlist {
	out := make([]Playlist, len(playlists))
	copy(out, playlists)
	return out
}

// Snippets returns the snippet table.
func Snippets() []Snippet {
	out := make([]Snippet, len(snippets))
	copy(out, snippets)
	return out
}
