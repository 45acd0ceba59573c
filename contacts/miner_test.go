package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMine_StructuredPersonBlock verifies strategy A on a typical
// team section: name, role, mailto email, phone, and LinkedIn.
func TestMine_StructuredPersonBlock(t *testing.T) {
	html := `<html><body>
		<div class="team-section">
			<div class="team-member">
				<h3>Jane Doe</h3>
				<p class="role">Event Director</p>
				<a href="mailto:jane@aisummit.example?subject=hi">Email</a>
				<a href="tel:+49301234567">Call</a>
				<a href="https://linkedin.com/in/janedoe">LinkedIn</a>
			</div>
		</div>
	</body></html>`

	miner := &Miner{}
	contacts, err := miner.Mine(html)

	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Jane Doe", contacts[0].Name)
	assert.Equal(t, "Event Director", contacts[0].Role)
	assert.Equal(t, "jane@aisummit.example", contacts[0].Email)
	assert.Equal(t, "+49301234567", contacts[0].Phone)
	assert.Equal(t, "https://linkedin.com/in/janedoe", contacts[0].LinkedIn)
}

// TestMine_DedupByEmail verifies that two person blocks resolving to
// the same email keep only the first-encountered contact.
func TestMine_DedupByEmail(t *testing.T) {
	html := `<html><body>
		<div class="staff">
			<div class="person"><h4>Jane Doe</h4><a href="mailto:team@conf.example">mail</a></div>
			<div class="person"><h4>John Smith</h4><a href="mailto:team@conf.example">mail</a></div>
		</div>
	</body></html>`

	miner := &Miner{}
	contacts, err := miner.Mine(html)

	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Jane Doe", contacts[0].Name)
}

// TestMine_RejectsNamedPersonWithoutEvidence verifies that a person
// block with neither an email nor an organizer-classified role yields
// no contact.
func TestMine_RejectsNamedPersonWithoutEvidence(t *testing.T) {
	html := `<html><body>
		<div class="speakers">
			<div class="card"><h4>John Smith</h4><p class="role">Software Engineer</p></div>
		</div>
	</body></html>`

	miner := &Miner{}
	contacts, err := miner.Mine(html)

	require.NoError(t, err)
	assert.Empty(t, contacts)
}

// TestMine_OrganizerRoleWithoutEmail verifies that an
// organizer-classified role is enough to keep a contact with no
// resolvable email.
func TestMine_OrganizerRoleWithoutEmail(t *testing.T) {
	html := `<html><body>
		<div class="committee">
			<div class="member"><h4>Maria Garcia</h4><p class="position">Conference Chair</p></div>
		</div>
	</body></html>`

	miner := &Miner{}
	contacts, err := miner.Mine(html)

	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Maria Garcia", contacts[0].Name)
	assert.Equal(t, "Conference Chair", contacts[0].Role)
	assert.Empty(t, contacts[0].Email)
}

// TestMine_SectionHeadingRejected verifies container labels are not
// mistaken for people.
func TestMine_SectionHeadingRejected(t *testing.T) {
	html := `<html><body>
		<div class="team">
			<div class="item"><h3>Speakers</h3></div>
			<div class="item"><h3>Jo</h3></div>
		</div>
	</body></html>`

	miner := &Miner{}
	contacts, err := miner.Mine(html)

	require.NoError(t, err)
	assert.Empty(t, contacts, "heading words and short names are container labels, not people")
}

// TestMine_EmailMatchedFromPageSet verifies the fuzzy fallback: a name
// token appearing in a page-wide email's local part claims that email.
func TestMine_EmailMatchedFromPageSet(t *testing.T) {
	html := `<html><body>
		<p>Write to john.smith@conf.example with questions.</p>
		<div class="organizers">
			<div class="profile"><h4>John Smith</h4><p>Speaker Liaison</p></div>
		</div>
	</body></html>`

	miner := &Miner{}
	contacts, err := miner.Mine(html)

	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "John Smith", contacts[0].Name)
	assert.Equal(t, "john.smith@conf.example", contacts[0].Email)
}

// TestMine_ContactSection verifies strategy B: a contact-labelled
// section with a mailto link yields a contact named after the nearest
// heading.
func TestMine_ContactSection(t *testing.T) {
	html := `<html><body>
		<div class="contact-info">
			<h3>General Inquiries</h3>
			<a href="mailto:info@conf.example">info@conf.example</a>
		</div>
	</body></html>`

	miner := &Miner{}
	contacts, err := miner.Mine(html)

	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "General Inquiries", contacts[0].Name)
	assert.Equal(t, "Contact", contacts[0].Role)
	assert.Equal(t, "info@conf.example", contacts[0].Email)
}

// TestMine_FallbackFromRawEmail verifies that a page with no
// structured contacts but a raw email in its text manufactures one
// contact with a name derived from the local part.
func TestMine_FallbackFromRawEmail(t *testing.T) {
	html := `<html><body>
		<p>Reach the organizing team at jane.doe@example.com for details.</p>
	</body></html>`

	miner := &Miner{}
	contacts, err := miner.Mine(html)

	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Jane Doe", contacts[0].Name)
	assert.Equal(t, "jane.doe@example.com", contacts[0].Email)
	assert.Equal(t, "Contact", contacts[0].Role)
}

// TestMine_FallbackNameWithoutAlphabeticRuns verifies the "Unknown"
// display name for purely numeric local parts.
func TestMine_FallbackNameWithoutAlphabeticRuns(t *testing.T) {
	html := `<html><body><p>Mail 12345@example.com</p></body></html>`

	miner := &Miner{}
	contacts, err := miner.Mine(html)

	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Unknown", contacts[0].Name)
}

// TestMine_FallbackSuppressedByStructuredHit verifies the fallback
// only triggers when nothing else yielded a contact.
func TestMine_FallbackSuppressedByStructuredHit(t *testing.T) {
	html := `<html><body>
		<p>Also try webmaster@conf.example.</p>
		<div class="team">
			<div class="member"><h4>Jane Doe</h4><a href="mailto:jane@conf.example">mail</a></div>
		</div>
	</body></html>`

	miner := &Miner{}
	contacts, err := miner.Mine(html)

	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "jane@conf.example", contacts[0].Email)
}

// TestMine_EmptyPage verifies a page with nothing to offer yields an
// empty result, not an error.
func TestMine_EmptyPage(t *testing.T) {
	miner := &Miner{}
	contacts, err := miner.Mine("<html><body><p>Welcome</p></body></html>")

	require.NoError(t, err)
	assert.Empty(t, contacts)
}
