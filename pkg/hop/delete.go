package hop

import (
	"fmt"

	"github.com/arthur-debert/hop/pkg/errors"
	"github.com/arthur-debert/hop/pkg/logging"
	"github.com/arthur-debert/hop/pkg/types"
)

// DeleteLink removes the bookmark named link after the user confirms.
//
//	Start -> not found                      -> error
//	Start -> found -> prompt -> "Y" or "y"  -> delete -> Succeeded | error
//	Start -> found -> prompt -> anything    -> Aborted
//
// The prompt is printed before the answer is read, and a missing link never
// prompts.
func (p *Program) DeleteLink(link types.Link) (types.DeleteStatus, error) {
	defer logging.LogOperationStart(p.logger, "delete")()

	home, err := p.userDirs.HopHome(p.home)
	if err != nil {
		return types.Aborted(), err
	}

	pairs, err := p.symLinks.ReadDirLinks(home)
	if err != nil {
		return types.Aborted(), err
	}

	pair, ok := findLink(pairs, link)
	if !ok {
		return types.Aborted(), errors.Newf(errors.ErrLinkNotFound, "Could not find link named:`%s` for deletion", link).
			WithDetail("link", link.String())
	}

	confirmed, err := p.confirm(deletePrompt(pair))
	if err != nil {
		return types.Aborted(), err
	}
	if !confirmed {
		p.logger.Info().Str("link", link.String()).Msg("Delete aborted by user")
		return types.Aborted(), nil
	}

	if err := p.symLinks.DeleteLink(home, pair); err != nil {
		return types.Aborted(), err
	}

	p.logger.Info().Str("link", link.String()).Str("target", pair.Target.String()).Msg("Deleted link")
	return types.Succeeded(pair), nil
}

// confirm prints message, then reads a single line. Only "Y" and "y" count as
// yes.
func (p *Program) confirm(message string) (bool, error) {
	p.stdIO.Println(message)

	response, err := p.stdIO.Readln()
	if err != nil {
		return false, err
	}

	switch response {
	case "Y", "y":
		return true, nil
	default:
		return false, nil
	}
}

func deletePrompt(pair types.LinkPair) string {
	return fmt.Sprintf("Are you sure you want to delete %s which links to %s ?", pair.Link, pair.Target)
}
