package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mcpdeck/mcpdeck/internal/model"
)

var (
	serverAddURL      string
	serverAddCmd      string
	serverAddArgs     []string
	serverAddSubtitle string
	serverAddIcon     string

	serverUpdateName     string
	serverUpdateURL      string
	serverUpdateCmd      string
	serverUpdateArgs     []string
	serverUpdateSubtitle string
	serverUpdateIcon     string
)

var serversCmd = &cobra.Command{
	Use:     "servers",
	Short:   "Manage the server catalog",
	GroupID: "catalog",
}

var serversListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cataloged servers",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog()
		if err != nil {
			return err
		}
		return listServers(os.Stdout, cat)
	},
}

var serversShowCmd = &cobra.Command{
	Use:   "show <server-id>",
	Short: "Show one server in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog()
		if err != nil {
			return err
		}
		return showServer(os.Stdout, cat, args[0])
	},
}

var serversAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a server to the catalog",
	Long: `Adds a server. With --url the server is remote; otherwise it is a
local launch spec and --cmd should usually be given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog()
		if err != nil {
			return err
		}
		return addServer(os.Stdout, cat, args[0])
	},
}

var serversRemoveCmd = &cobra.Command{
	Use:   "remove <server-id>",
	Short: "Remove a server from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog()
		if err != nil {
			return err
		}
		return removeServer(os.Stdout, cat, args[0])
	},
}

var serversUpdateCmd = &cobra.Command{
	Use:   "update <server-id>",
	Short: "Update fields of a cataloged server",
	Long:  `Updates only the fields whose flags were given; everything else is left alone.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog()
		if err != nil {
			return err
		}
		return updateServer(os.Stdout, cat, cmd, args[0])
	},
}

func init() {
	serversAddCmd.Flags().StringVar(&serverAddURL, "url", "", "Endpoint URL (makes the server remote)")
	serversAddCmd.Flags().StringVar(&serverAddCmd, "cmd", "", "Launch command for a local server")
	serversAddCmd.Flags().StringSliceVar(&serverAddArgs, "arg", nil, "Launch argument (repeatable)")
	serversAddCmd.Flags().StringVar(&serverAddSubtitle, "subtitle", "", "Optional description")
	serversAddCmd.Flags().StringVar(&serverAddIcon, "icon", string(model.IconGreen), "Icon color")

	serversUpdateCmd.Flags().StringVar(&serverUpdateName, "name", "", "New display name")
	serversUpdateCmd.Flags().StringVar(&serverUpdateURL, "url", "", "New endpoint URL")
	serversUpdateCmd.Flags().StringVar(&serverUpdateCmd, "cmd", "", "New launch command")
	serversUpdateCmd.Flags().StringSliceVar(&serverUpdateArgs, "arg", nil, "New launch argument (repeatable, replaces the full list)")
	serversUpdateCmd.Flags().StringVar(&serverUpdateSubtitle, "subtitle", "", "New description")
	serversUpdateCmd.Flags().StringVar(&serverUpdateIcon, "icon", "", "New icon color")

	serversCmd.AddCommand(serversListCmd, serversShowCmd, serversAddCmd, serversRemoveCmd, serversUpdateCmd)
	rootCmd.AddCommand(serversCmd)
}

func listServers(w io.Writer, cat *catalog) error {
	servers := cat.servers.All()
	if len(servers) == 0 {
		fmt.Fprintln(w, "No servers cataloged. Try `mcpdeck scan --import` or `mcpdeck servers add`.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tENDPOINT/CMD\tSOURCES")
	for _, srv := range servers {
		endpoint := srv.URL
		if srv.IsLocal() {
			endpoint = srv.Cmd
			if len(srv.CmdArgs) > 0 {
				endpoint += " " + strings.Join(srv.CmdArgs, " ")
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n",
			srv.ID, srv.Name, srv.Type, endpoint, len(cat.links.SourcesFor(srv.ID)))
	}
	return tw.Flush()
}

func showServer(w io.Writer, cat *catalog, id string) error {
	srv, ok := cat.servers.Get(id)
	if !ok {
		return fmt.Errorf("no server with id %q", id)
	}

	fmt.Fprintf(w, "%s (%s)\n", srv.Name, srv.ID)
	fmt.Fprintf(w, "  type: %s\n", srv.Type)
	if srv.URL != "" {
		fmt.Fprintf(w, "  url:  %s\n", srv.URL)
	}
	if srv.Cmd != "" {
		fmt.Fprintf(w, "  cmd:  %s", srv.Cmd)
		if len(srv.CmdArgs) > 0 {
			fmt.Fprintf(w, " %s", strings.Join(srv.CmdArgs, " "))
		}
		fmt.Fprintln(w)
	}
	if srv.Source != "" {
		fmt.Fprintf(w, "  from: %s\n", srv.Source)
	}
	if srv.Subtitle != "" {
		fmt.Fprintf(w, "  note: %s\n", srv.Subtitle)
	}
	for _, sourceID := range cat.links.SourcesFor(srv.ID) {
		if src, ok := cat.sources.Get(sourceID); ok {
			fmt.Fprintf(w, "  synced to: %s (%s)\n", src.Name, src.Path)
		}
	}
	return nil
}

func addServer(w io.Writer, cat *catalog, name string) error {
	icon := model.IconType(serverAddIcon)
	if !icon.Valid() {
		return fmt.Errorf("unknown icon %q", serverAddIcon)
	}

	srv := model.Server{
		Name:     name,
		URL:      serverAddURL,
		Type:     model.ServerTypeLocal,
		Cmd:      serverAddCmd,
		CmdArgs:  serverAddArgs,
		IconType: icon,
		Subtitle: serverAddSubtitle,
	}
	if serverAddURL != "" {
		srv.Type = model.ServerTypeRemote
	}

	created, err := cat.servers.Create(srv)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Added %s (%s)\n", created.Name, created.ID)
	return nil
}

func removeServer(w io.Writer, cat *catalog, id string) error {
	ok, err := cat.servers.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no server with id %q", id)
	}
	if err := cat.links.DropServer(id); err != nil {
		return err
	}
	fmt.Fprintf(w, "Removed %s\n", id)
	return nil
}

func updateServer(w io.Writer, cat *catalog, cmd *cobra.Command, id string) error {
	var upd model.ServerUpdate
	if cmd.Flags().Changed("name") {
		upd.Name = &serverUpdateName
	}
	if cmd.Flags().Changed("url") {
		upd.URL = &serverUpdateURL
		t := model.ServerTypeLocal
		if serverUpdateURL != "" {
			t = model.ServerTypeRemote
		}
		upd.Type = &t
	}
	if cmd.Flags().Changed("cmd") {
		upd.Cmd = &serverUpdateCmd
	}
	if cmd.Flags().Changed("arg") {
		upd.CmdArgs = &serverUpdateArgs
	}
	if cmd.Flags().Changed("subtitle") {
		upd.Subtitle = &serverUpdateSubtitle
	}
	if cmd.Flags().Changed("icon") {
		icon := model.IconType(serverUpdateIcon)
		if !icon.Valid() {
			return fmt.Errorf("unknown icon %q", serverUpdateIcon)
		}
		upd.IconType = &icon
	}

	ok, err := cat.servers.Update(id, upd)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no server with id %q", id)
	}
	fmt.Fprintf(w, "Updated %s\n", id)
	return nil
}
