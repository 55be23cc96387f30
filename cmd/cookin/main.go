// cookin is a small interactive terminal client for the What's Cookin'
// API. The session (user, token, theme, cached feed) lives in an appstate
// container, the same entry points the web client's reducer exposed.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/whats-cookin/backend/internal/appstate"
	"github.com/whats-cookin/backend/internal/client"
	"github.com/whats-cookin/backend/model"
)

func main() {
	server := flag.String("server", "http://localhost:6001", "API base URL")
	flag.Parse()

	api := client.New(*server)
	state := appstate.New()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("what's cookin'? type 'help' for commands")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := run(ctx, api, state, args); err != nil {
			fmt.Println("error:", err)
		}
		cancel()
	}
}

func run(ctx context.Context, api *client.Client, state *appstate.State, args []string) error {
	switch args[0] {
	case "help":
		fmt.Println(`login <email> <password>   log in
logout                     clear the session
feed                       refresh and show all posts
myposts                    show your posts
post <header> [desc...]    create a post
like <n>                   toggle like on the n-th cached post
comment <n> <text...>      comment on the n-th cached post
friends                    list your friends
friend <userId>            befriend/unfriend a user
mode                       toggle light/dark
quit                       exit`)
		return nil

	case "quit", "exit":
		os.Exit(0)
		return nil

	case "mode":
		state.ToggleMode()
		fmt.Println("mode:", state.Mode())
		return nil

	case "login":
		if len(args) != 3 {
			return fmt.Errorf("usage: login <email> <password>")
		}
		resp, err := api.Login(ctx, args[1], args[2])
		if err != nil {
			return err
		}
		state.SetLogin(resp.User, resp.AuthToken)
		fmt.Printf("hi %s!\n", resp.User.FirstName)
		return nil

	case "logout":
		state.SetLogout()
		api.SetToken("")
		return nil
	}

	// everything below needs a session
	user := state.User()
	if user == nil {
		return fmt.Errorf("not logged in")
	}
	api.SetToken(state.Token())

	switch args[0] {
	case "feed":
		posts, err := api.Feed(ctx)
		if err != nil {
			return err
		}
		state.SetPosts(posts)
		printPosts(state)
		return nil

	case "myposts":
		posts, err := api.UserFeed(ctx, user.ID.Hex())
		if err != nil {
			return err
		}
		state.SetPosts(posts)
		printPosts(state)
		return nil

	case "post":
		if len(args) < 2 {
			return fmt.Errorf("usage: post <header> [description...]")
		}
		feed, err := api.CreatePost(ctx, user.ID.Hex(), args[1], strings.Join(args[2:], " "), "")
		if err != nil {
			return err
		}
		state.SetPosts(feed)
		printPosts(state)
		return nil

	case "like":
		post, err := cachedPost(state, args)
		if err != nil {
			return err
		}
		updated, err := api.LikePost(ctx, post.ID.Hex(), user.ID.Hex())
		if err != nil {
			return err
		}
		state.SetPost(*updated)
		fmt.Printf("%d likes\n", len(updated.Likes))
		return nil

	case "comment":
		if len(args) < 3 {
			return fmt.Errorf("usage: comment <n> <text...>")
		}
		post, err := cachedPost(state, args[:2])
		if err != nil {
			return err
		}
		updated, err := api.AddComment(ctx, post.ID.Hex(), strings.Join(args[2:], " "))
		if err != nil {
			return err
		}
		state.SetPost(*updated)
		fmt.Printf("%d comments\n", len(updated.Comments))
		return nil

	case "friends":
		friends, err := api.Friends(ctx, user.ID.Hex())
		if err != nil {
			return err
		}
		for _, f := range friends {
			fmt.Printf("  %s %s (%s)\n", f.FirstName, f.LastName, f.ID.Hex())
		}
		return nil

	case "friend":
		if len(args) != 2 {
			return fmt.Errorf("usage: friend <userId>")
		}
		friends, err := api.ToggleFriend(ctx, user.ID.Hex(), args[1])
		if err != nil {
			return err
		}
		ids := make([]bson.ObjectID, 0, len(friends))
		for _, f := range friends {
			ids = append(ids, f.ID)
		}
		state.SetFriends(ids)
		fmt.Printf("%d friends\n", len(friends))
		return nil
	}

	return fmt.Errorf("unknown command %q, try 'help'", args[0])
}

func cachedPost(state *appstate.State, args []string) (*model.Post, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("usage: %s <n>", args[0])
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, fmt.Errorf("not a number: %s", args[1])
	}
	posts := state.Posts()
	if n < 1 || n > len(posts) {
		return nil, fmt.Errorf("no such post, run 'feed' first")
	}
	return &posts[n-1], nil
}

func printPosts(state *appstate.State) {
	for i, p := range state.Posts() {
		fmt.Printf("%2d. %s by %s %s (%d likes, %d comments)\n",
			i+1, p.PostHeader, p.FirstName, p.LastName, len(p.Likes), len(p.Comments))
	}
}
